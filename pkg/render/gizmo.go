package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
)

// screenGizmos draws steering gizmos onto an ebiten image in world coordinates.
type screenGizmos struct {
	screen *ebiten.Image
	view   Viewport
}

func (s screenGizmos) Circle(center geometry.Vector2D, radius float64, c color.Color) {
	x, y := s.view.ToScreen(center)
	vector.StrokeCircle(s.screen, x, y, s.view.Scale(radius), 1, c, true)
}

func (s screenGizmos) Line(from, to geometry.Vector2D, c color.Color) {
	x0, y0 := s.view.ToScreen(from)
	x1, y1 := s.view.ToScreen(to)
	vector.StrokeLine(s.screen, x0, y0, x1, y1, 1, c, true)
}
