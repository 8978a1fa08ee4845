package steering

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
)

// probeCaster answers right/left probes by which side of the heading the ray points to.
type probeCaster struct {
	heading     geometry.Vector2D
	right, left *Hit
	calls       int
	lastMask    LayerMask
	lastMax     float64
}

func (p *probeCaster) Cast(_, dir geometry.Vector2D, maxDistance float64, mask LayerMask) (Hit, bool) {
	p.calls++
	p.lastMask = mask
	p.lastMax = maxDistance
	side := p.heading.Cross(dir)
	switch {
	case side < 0 && p.right != nil:
		return *p.right, true
	case side > 0 && p.left != nil:
		return *p.left, true
	}
	return Hit{}, false
}

func TestContourWalls(t *testing.T) {
	cfg := DefaultConfig()
	heading := vec(1, 0)
	rightProbe := heading.RotateDegrees(-cfg.ContourAngleStep)
	leftProbe := heading.RotateDegrees(cfg.ContourAngleStep)

	rightHit := &Hit{Point: vec(1.5, -0.5), Distance: 1.58}
	leftHit := &Hit{Point: vec(1.5, 0.7), Distance: 1.66}

	tests := []struct {
		name    string
		right   *Hit
		left    *Hit
		wantDir geometry.Vector2D
		wantLen float64
		changed bool
	}{
		{"Both blocked", rightHit, leftHit, rightHit.Point.Sub(leftHit.Point).Normalize(), cfg.MaxSpeed, true},
		{"Right blocked", rightHit, nil, leftProbe, cfg.MaxSpeed, true},
		{"Left blocked", nil, leftHit, rightProbe, cfg.MaxSpeed, true},
		{"Clear", nil, nil, heading, 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caster := &probeCaster{heading: heading, right: tt.right, left: tt.left}
			c := mustController(t, BehaviorSeek, WithRayCaster(caster))
			agent := &Agent{Velocity: vec(1.5, 0)}

			c.ContourWalls(agent)

			if caster.calls != 2 {
				t.Errorf("casts = %d; want 2", caster.calls)
			}
			if caster.lastMask != cfg.WallLayer || caster.lastMax != cfg.ContourDistance {
				t.Errorf("cast used mask %v, max %v; want %v, %v", caster.lastMask, caster.lastMax, cfg.WallLayer, cfg.ContourDistance)
			}
			if !floatEquals(agent.Speed(), tt.wantLen) {
				t.Errorf("speed = %v; want %v", agent.Speed(), tt.wantLen)
			}
			if !agent.Velocity.Normalize().Eq(tt.wantDir) {
				t.Errorf("direction = %v; want %v", agent.Velocity.Normalize(), tt.wantDir)
			}
			if !tt.changed && !agent.Velocity.Eq(vec(1.5, 0)) {
				t.Errorf("velocity changed with clear probes: %v", agent.Velocity)
			}
		})
	}
}

func TestContourWalls_ZeroVelocity(t *testing.T) {
	caster := &probeCaster{heading: vec(1, 0), right: &Hit{}, left: &Hit{}}
	c := mustController(t, BehaviorSeek, WithRayCaster(caster))
	agent := &Agent{}

	c.ContourWalls(agent)

	if caster.calls != 0 {
		t.Errorf("casts = %d; want none for a resting agent", caster.calls)
	}
	if agent.Velocity != (geometry.Vector2D{}) {
		t.Errorf("velocity = %v; want zero", agent.Velocity)
	}
}

func TestContourWalls_NoCaster(t *testing.T) {
	c := mustController(t, BehaviorSeek)
	agent := &Agent{Velocity: vec(0, 2)}
	c.ContourWalls(agent)
	if !agent.Velocity.Eq(vec(0, 2)) {
		t.Errorf("velocity = %v; want unchanged", agent.Velocity)
	}
}

func TestSeek_ContourOverridesSteering(t *testing.T) {
	cfg := DefaultConfig()
	heading := vec(1, 0)
	caster := &probeCaster{heading: heading, right: &Hit{Point: vec(1, -0.2), Distance: 1}}
	c := mustController(t, BehaviorSeek, WithRayCaster(caster))
	agent := &Agent{Velocity: vec(2, 0)}

	state := c.Tick(agent, ptr(vec(10, 0)))

	if state != StateSeek {
		t.Fatalf("state = %v; want Seek", state)
	}
	want := heading.RotateDegrees(cfg.ContourAngleStep).Mul(cfg.MaxSpeed)
	if !agent.Velocity.EqTol(want, 1e-9) {
		t.Errorf("velocity = %v; want left probe at max speed %v", agent.Velocity, want)
	}
}

func TestIdleBehavior_SkipsContour(t *testing.T) {
	caster := &probeCaster{heading: vec(1, 0), right: &Hit{}, left: &Hit{}}
	c := mustController(t, BehaviorIdle, WithRayCaster(caster))
	c.Tick(&Agent{Velocity: vec(1, 0)}, ptr(vec(5, 0)))
	if caster.calls != 0 {
		t.Errorf("idle behavior probed walls %d times", caster.calls)
	}
}
