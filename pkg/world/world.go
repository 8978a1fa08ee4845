// Package world holds the static wall geometry agents steer around and answers ray casts against it.
package world

import (
	"math"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-steering/pkg/steering"
)

// Wall is a segment on one or more collision layers.
type Wall struct {
	geometry.Segment
	Layer steering.LayerMask
}

// World is immutable after New, so Cast may be called from every agent at once.
type World struct {
	walls []Wall
}

var _ steering.RayCaster = (*World)(nil)

func New(walls ...Wall) *World {
	w := &World{walls: make([]Wall, len(walls))}
	copy(w.walls, walls)
	return w
}

// Walls returns a copy of the wall list, for drawing.
func (w *World) Walls() []Wall {
	out := make([]Wall, len(w.walls))
	copy(out, w.walls)
	return out
}

// Cast returns the nearest wall crossing within maxDistance along direction.
// Walls whose layer does not intersect mask are ignored.
func (w *World) Cast(origin, direction geometry.Vector2D, maxDistance float64, mask steering.LayerMask) (steering.Hit, bool) {
	dir := direction.Normalize()
	if dir.IsZero() || maxDistance <= 0 {
		return steering.Hit{}, false
	}

	best := math.Inf(1)
	for _, wall := range w.walls {
		if !mask.Contains(wall.Layer) {
			continue
		}
		t, ok := wall.RayIntersect(origin, dir)
		if !ok || t > maxDistance || t >= best {
			continue
		}
		best = t
	}
	if math.IsInf(best, 1) {
		return steering.Hit{}, false
	}
	return steering.Hit{Point: origin.Add(dir.Mul(best)), Distance: best}, true
}

// Box returns the four walls of the axis aligned rectangle between min and max.
func Box(min, max geometry.Vector2D, layer steering.LayerMask) []Wall {
	corners := []geometry.Vector2D{
		min,
		{X: max.X, Y: min.Y},
		max,
		{X: min.X, Y: max.Y},
	}
	walls := make([]Wall, 0, len(corners))
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		walls = append(walls, Wall{Segment: geometry.Segment{A: a, B: b}, Layer: layer})
	}
	return walls
}
