package render

import "github.com/lao-tseu-is-alive/go-steering/pkg/geometry"

// Viewport maps world units to screen pixels. The world origin is the top-left corner.
type Viewport struct {
	PixelsPerUnit float64
	OffsetX       float64
	OffsetY       float64
}

func (v Viewport) ToScreen(p geometry.Vector2D) (float32, float32) {
	return float32(v.OffsetX + p.X*v.PixelsPerUnit), float32(v.OffsetY + p.Y*v.PixelsPerUnit)
}

func (v Viewport) ToWorld(x, y int) geometry.Vector2D {
	if v.PixelsPerUnit == 0 {
		return geometry.Zero
	}
	return geometry.Vector2D{
		X: (float64(x) - v.OffsetX) / v.PixelsPerUnit,
		Y: (float64(y) - v.OffsetY) / v.PixelsPerUnit,
	}
}

func (v Viewport) Scale(d float64) float32 {
	return float32(d * v.PixelsPerUnit)
}
