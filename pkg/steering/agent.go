package steering

import "github.com/lao-tseu-is-alive/go-steering/pkg/geometry"

// Agent is the physical side of a steered actor. The controller only writes Velocity;
// Position is advanced by whoever owns the physics step.
type Agent struct {
	Position geometry.Vector2D
	Velocity geometry.Vector2D
}

// Integrate advances Position by Velocity over dt seconds.
func (a *Agent) Integrate(dt float64) {
	a.Position = a.Position.Add(a.Velocity.Mul(dt))
}

// Speed is the magnitude of the velocity.
func (a *Agent) Speed() float64 {
	return a.Velocity.Len()
}
