package simulation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-steering/pkg/world"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/structpb"
)

const defaultAskTimeout = time.Second

// Swarm runs every configured agent as an actor and advances them together, one fixed tick per Step.
// The world geometry is shared read-only between agents.
type Swarm struct {
	cfg    *Config
	system actor.ActorSystem
	world  *world.World
	pids   []*actor.PID

	target  *geometry.Vector2D
	ticks   int
	timeout time.Duration
}

// NewSwarm starts an actor system and spawns one AgentActor per agent spec.
func NewSwarm(ctx context.Context, cfg *Config, logger golog.Logger) (*Swarm, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}

	system, err := actor.NewActorSystem("SteeringWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}

	s := &Swarm{
		cfg:     cfg,
		system:  system,
		world:   cfg.BuildWorld(),
		timeout: defaultAskTimeout,
	}
	if cfg.Target != nil {
		t := *cfg.Target
		s.target = &t
	}

	specs := append([]AgentSpec(nil), cfg.Agents...)
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })

	for _, spec := range specs {
		a, err := NewAgentActor(spec, cfg.Steering, s.world)
		if err != nil {
			_ = system.Stop(ctx)
			return nil, fmt.Errorf("agent %s: %w", spec.Name, err)
		}
		pid, err := system.Spawn(ctx, spec.Name, a)
		if err != nil {
			_ = system.Stop(ctx)
			return nil, fmt.Errorf("failed to spawn %s: %w", spec.Name, err)
		}
		s.pids = append(s.pids, pid)
	}
	logger.Infof("Swarm started with %d agents and %d walls", len(s.pids), len(s.world.Walls()))
	return s, nil
}

func (s *Swarm) World() *world.World { return s.world }
func (s *Swarm) Config() *Config     { return s.cfg }
func (s *Swarm) Ticks() int          { return s.ticks }

// Target returns the current target, nil when absent.
func (s *Swarm) Target() *geometry.Vector2D {
	if s.target == nil {
		return nil
	}
	t := *s.target
	return &t
}

// SetTarget moves the target for the next steps. nil removes it.
func (s *Swarm) SetTarget(target *geometry.Vector2D) {
	if target == nil {
		s.target = nil
		return
	}
	t := *target
	s.target = &t
}

// Step ticks every agent once and returns their snapshots sorted by id.
func (s *Swarm) Step(ctx context.Context) ([]Snapshot, error) {
	msg, err := NewTick(s.target)
	if err != nil {
		return nil, err
	}
	snaps, err := s.askAll(ctx, msg)
	if err != nil {
		return nil, err
	}
	s.ticks++
	return snaps, nil
}

// Snapshots returns the agents' current state without advancing them.
func (s *Swarm) Snapshots(ctx context.Context) ([]Snapshot, error) {
	msg, err := NewGetState()
	if err != nil {
		return nil, err
	}
	return s.askAll(ctx, msg)
}

func (s *Swarm) askAll(ctx context.Context, msg *structpb.Struct) ([]Snapshot, error) {
	snaps := make([]Snapshot, len(s.pids))
	g, gctx := errgroup.WithContext(ctx)
	for i, pid := range s.pids {
		g.Go(func() error {
			reply, err := actor.Ask(gctx, pid, msg, s.timeout)
			if err != nil {
				return fmt.Errorf("ask %s: %w", pid.Name(), err)
			}
			st, ok := reply.(*structpb.Struct)
			if !ok {
				return fmt.Errorf("ask %s: unexpected reply %T", pid.Name(), reply)
			}
			snap, err := SnapshotFromProto(st)
			if err != nil {
				return fmt.Errorf("ask %s: %w", pid.Name(), err)
			}
			snaps[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snaps, nil
}

// Run steps the swarm n times, handing every step's snapshots to rec when it is not nil.
func (s *Swarm) Run(ctx context.Context, n int, rec *Recorder) error {
	for i := 0; i < n; i++ {
		snaps, err := s.Step(ctx)
		if err != nil {
			return fmt.Errorf("tick %d: %w", s.ticks, err)
		}
		if rec != nil {
			rec.Record(s.ticks, s.target, snaps)
		}
	}
	return nil
}

// Stop shuts the actor system down.
func (s *Swarm) Stop(ctx context.Context) error {
	return s.system.Stop(ctx)
}
