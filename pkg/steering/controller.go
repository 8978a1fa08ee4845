// Package steering turns a target position and a behavior mode into a velocity
// update once per fixed tick, with speed limiting and two-ray wall contouring.
package steering

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	golog "github.com/tochemey/goakt/v3/log"
)

// Controller steers a single agent. It is not safe for concurrent use; give
// every agent its own Controller and share only the RayCaster.
type Controller struct {
	cfg      Config
	behavior Behavior
	caster   RayCaster
	sink     LabelSink
	logger   golog.Logger

	state State
}

// Option customises a Controller at construction.
type Option func(*Controller)

// WithRayCaster enables contour avoidance. Without one the controller never probes for walls.
func WithRayCaster(rc RayCaster) Option {
	return func(c *Controller) { c.caster = rc }
}

// WithLabelSink attaches a display for the state label.
func WithLabelSink(sink LabelSink) Option {
	return func(c *Controller) { c.sink = sink }
}

func WithLogger(l golog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController validates cfg and builds a controller starting in StateIdle.
func NewController(cfg Config, behavior Behavior, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := behaviorNames[behavior]; !ok {
		return nil, ErrUnknownBehavior
	}
	return newController(cfg, behavior, opts...), nil
}

func newController(cfg Config, behavior Behavior, opts ...Option) *Controller {
	c := &Controller{
		cfg:      cfg,
		behavior: behavior,
		logger:   golog.DiscardLogger,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Config() Config     { return c.cfg }
func (c *Controller) Behavior() Behavior { return c.behavior }

// State is the state decided on the last tick. A tick without target keeps the previous value.
func (c *Controller) State() State { return c.state }

// Tick runs one fixed step: dispatch to the behavior evaluator when a target is
// present, clamp the velocity to MaxSpeed, then publish the state label.
func (c *Controller) Tick(agent *Agent, target *geometry.Vector2D) State {
	if target != nil {
		switch c.behavior {
		case BehaviorIdle:
			c.setState(StateIdle)
			c.idle(agent)
		case BehaviorSeek:
			c.seek(agent, *target)
		case BehaviorEvade:
			c.evade(agent, *target)
		}
	}

	agent.Velocity = agent.Velocity.ClampMagnitude(c.cfg.MaxSpeed)

	if c.sink != nil {
		c.sink.SetLabel(c.state.Label())
	}
	return c.state
}

// Tick is the stateless form of Controller.Tick: it works on a copy of agent and
// returns the new velocity and state. cfg is trusted; validate it beforehand.
func Tick(agent Agent, cfg Config, behavior Behavior, target *geometry.Vector2D, rc RayCaster) (geometry.Vector2D, State) {
	c := newController(cfg, behavior, WithRayCaster(rc))
	state := c.Tick(&agent, target)
	return agent.Velocity, state
}

// Steer computes the seek steering toward target, desired velocity minus current
// velocity, together with the distance to the target. A target sitting exactly on
// position yields a desired velocity of zero.
func Steer(position, target, velocity geometry.Vector2D, maxSpeed float64) (geometry.Vector2D, float64) {
	delta := target.Sub(position)
	desired := delta.Normalize().Mul(maxSpeed)
	return desired.Sub(velocity), delta.Len()
}

func (c *Controller) idle(agent *Agent) {
	agent.Velocity = agent.Velocity.Mul(c.cfg.DecelerationFactor)
}

func (c *Controller) seek(agent *Agent, target geometry.Vector2D) {
	steering, distance := Steer(agent.Position, target, agent.Velocity, c.cfg.MaxSpeed)
	c.setState(c.cfg.SeekState(distance))

	dt := c.cfg.FixedDeltaTime
	switch c.state {
	case StateIdle:
		c.idle(agent)
	case StateArrive:
		factor := c.cfg.ArriveFactor(distance)
		agent.Velocity = agent.Velocity.Add(steering.Mul(factor * dt))
	case StateSeek:
		agent.Velocity = agent.Velocity.Add(steering.Mul(dt))
	}

	c.ContourWalls(agent)
}

func (c *Controller) evade(agent *Agent, target geometry.Vector2D) {
	steering, distance := Steer(agent.Position, target, agent.Velocity, c.cfg.MaxSpeed)
	c.setState(c.cfg.EvadeState(distance))

	switch c.state {
	case StateIdle:
		c.idle(agent)
	case StateEvade:
		agent.Velocity = agent.Velocity.Sub(steering.Mul(c.cfg.FixedDeltaTime))
	}

	c.ContourWalls(agent)
}

func (c *Controller) setState(next State) {
	if next != c.state {
		c.logger.Debugf("steering %s: %s -> %s", c.behavior, c.state, next)
	}
	c.state = next
}

var (
	gizmoArrive = color.White
	gizmoStop   = color.RGBA{G: 255, A: 255}
	gizmoEvade  = color.RGBA{R: 255, A: 255}
	gizmoTarget = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// DrawGizmos draws the radii of the active behavior around position and a line to the target.
// Nothing is drawn without a target.
func (c *Controller) DrawGizmos(position geometry.Vector2D, target *geometry.Vector2D, d GizmoDrawer) {
	if target == nil || d == nil {
		return
	}
	switch c.behavior {
	case BehaviorSeek:
		d.Circle(position, c.cfg.ArriveRadius, gizmoArrive)
		d.Circle(position, c.cfg.StopRadius, gizmoStop)
	case BehaviorEvade:
		d.Circle(position, c.cfg.EvadeRadius, gizmoEvade)
	}
	d.Line(position, *target, gizmoTarget)
}
