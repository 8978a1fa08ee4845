package steering

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
)

// Hit is the nearest contact reported by a RayCaster.
type Hit struct {
	Point    geometry.Vector2D
	Distance float64
}

// RayCaster answers "what does this ray hit first". Implementations must be safe
// for concurrent use since agents are ticked independently.
type RayCaster interface {
	Cast(origin, direction geometry.Vector2D, maxDistance float64, mask LayerMask) (Hit, bool)
}

// LabelSink receives the uppercase state label after every tick.
type LabelSink interface {
	SetLabel(label string)
}

// LabelFunc adapts a plain function to LabelSink.
type LabelFunc func(label string)

func (f LabelFunc) SetLabel(label string) { f(label) }

// GizmoDrawer renders the debug overlay.
type GizmoDrawer interface {
	Circle(center geometry.Vector2D, radius float64, c color.Color)
	Line(from, to geometry.Vector2D, c color.Color)
}
