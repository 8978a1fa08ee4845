package steering

// ContourWalls probes two rays rotated ContourAngleStep degrees either side of the
// current heading and, when a wall is found, replaces the velocity outright:
//
//	both rays hit  -> along rightHit - leftHit at MaxSpeed
//	right ray hits -> along the left probe at MaxSpeed
//	left ray hits  -> along the right probe at MaxSpeed
//
// Nothing happens without a RayCaster or while the agent is not moving.
// The escape direction used when both rays hit is not itself probed, so in concave
// corners it can point back into a wall.
func (c *Controller) ContourWalls(agent *Agent) {
	if c.caster == nil || agent.Velocity.IsZero() {
		return
	}

	heading := agent.Velocity.Normalize()
	right := heading.RotateDegrees(-c.cfg.ContourAngleStep)
	left := heading.RotateDegrees(c.cfg.ContourAngleStep)

	hitRight, blockedRight := c.caster.Cast(agent.Position, right, c.cfg.ContourDistance, c.cfg.WallLayer)
	hitLeft, blockedLeft := c.caster.Cast(agent.Position, left, c.cfg.ContourDistance, c.cfg.WallLayer)

	switch {
	case blockedRight && blockedLeft:
		escape := hitRight.Point.Sub(hitLeft.Point).Normalize()
		agent.Velocity = escape.Mul(c.cfg.MaxSpeed)
		c.logger.Debugf("contour: both probes blocked at %s and %s, escaping along %s", hitRight.Point, hitLeft.Point, escape)
	case blockedRight:
		agent.Velocity = left.Normalize().Mul(c.cfg.MaxSpeed)
		c.logger.Debugf("contour: right probe blocked at %s", hitRight.Point)
	case blockedLeft:
		agent.Velocity = right.Normalize().Mul(c.cfg.MaxSpeed)
		c.logger.Debugf("contour: left probe blocked at %s", hitLeft.Point)
	}
}
