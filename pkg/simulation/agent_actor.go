package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-steering/pkg/steering"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// AgentActor owns one agent and its steering controller. Each tick message runs the
// controller, integrates the position and answers with a snapshot.
type AgentActor struct {
	ID       string
	behavior steering.Behavior
	cfg      steering.Config
	caster   steering.RayCaster

	agent steering.Agent
	ctrl  *steering.Controller
	label string
}

var _ actor.Actor = (*AgentActor)(nil)

func NewAgentActor(spec AgentSpec, cfg steering.Config, caster steering.RayCaster) (*AgentActor, error) {
	behavior, err := steering.ParseBehavior(spec.Behavior)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &AgentActor{
		ID:       spec.Name,
		behavior: behavior,
		cfg:      cfg,
		caster:   caster,
		agent: steering.Agent{
			Position: geometry.Vector2D{X: spec.X, Y: spec.Y},
			Velocity: geometry.Vector2D{X: spec.VX, Y: spec.VY},
		},
	}, nil
}

// ============================================================================
// Actor Lifecycle Hooks
// ============================================================================

func (a *AgentActor) PreStart(ctx *actor.Context) error {
	a.ID = ctx.ActorName()
	ctrl, err := steering.NewController(a.cfg, a.behavior,
		steering.WithRayCaster(a.caster),
		steering.WithLabelSink(steering.LabelFunc(func(l string) { a.label = l })),
		steering.WithLogger(ctx.ActorSystem().Logger()),
	)
	if err != nil {
		return fmt.Errorf("agent %s: %w", a.ID, err)
	}
	a.ctrl = ctrl
	a.label = ctrl.State().Label()
	ctx.ActorSystem().Logger().Infof("Born: %s (%s) at %s", a.ID, a.behavior, a.agent.Position)
	return nil
}

func (a *AgentActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Stopped: %s at %s", ctx.ActorName(), a.agent.Position)
	return nil
}

// ============================================================================
// Message Routing
// ============================================================================

func (a *AgentActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Debugf("%s started in %s mode", ctx.Self().Name(), a.behavior)

	case *structpb.Struct:
		switch messageKind(msg) {
		case kindTick:
			a.tick(tickTarget(msg))
			a.respond(ctx)
		case kindGetState:
			a.respond(ctx)
		default:
			ctx.Unhandled()
		}

	default:
		ctx.Unhandled()
	}
}

// tick is one fixed step: steer, then let the velocity move the agent.
func (a *AgentActor) tick(target *geometry.Vector2D) {
	a.ctrl.Tick(&a.agent, target)
	a.agent.Integrate(a.cfg.FixedDeltaTime)
}

func (a *AgentActor) respond(ctx *actor.ReceiveContext) {
	reply, err := a.Snapshot().ToProto()
	if err != nil {
		ctx.Err(err)
		return
	}
	ctx.Response(reply)
}

// Snapshot reports the current agent state.
func (a *AgentActor) Snapshot() Snapshot {
	state := steering.StateIdle
	if a.ctrl != nil {
		state = a.ctrl.State()
	}
	return Snapshot{
		ID:       a.ID,
		Behavior: a.behavior,
		State:    state,
		Label:    a.label,
		Position: a.agent.Position,
		Velocity: a.agent.Velocity,
	}
}
