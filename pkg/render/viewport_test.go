package render

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
)

func TestViewport_RoundTrip(t *testing.T) {
	v := Viewport{PixelsPerUnit: 40, OffsetX: 10}
	x, y := v.ToScreen(geometry.Vector2D{X: 2, Y: 1.5})
	if x != 90 || y != 60 {
		t.Fatalf("ToScreen = (%v, %v); want (90, 60)", x, y)
	}
	if got := v.ToWorld(90, 60); !got.Eq(geometry.Vector2D{X: 2, Y: 1.5}) {
		t.Errorf("ToWorld = %v; want (2, 1.5)", got)
	}
	if got := v.Scale(0.5); got != 20 {
		t.Errorf("Scale(0.5) = %v; want 20", got)
	}
}

func TestViewport_ZeroScale(t *testing.T) {
	if got := (Viewport{}).ToWorld(5, 5); !got.IsZero() {
		t.Errorf("ToWorld with no scale = %v; want zero", got)
	}
}
