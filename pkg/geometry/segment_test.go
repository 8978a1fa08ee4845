package geometry

import "testing"

func TestSegment_RayIntersect(t *testing.T) {
	wall := Segment{A: Vector2D{2, -1}, B: Vector2D{2, 1}}

	tests := []struct {
		name   string
		origin Vector2D
		dir    Vector2D
		wantT  float64
		wantOK bool
	}{
		{"Straight hit", Vector2D{0, 0}, Vector2D{1, 0}, 2, true},
		{"Scaled direction", Vector2D{0, 0}, Vector2D{2, 0}, 1, true},
		{"Pointing away", Vector2D{0, 0}, Vector2D{-1, 0}, 0, false},
		{"Passes above", Vector2D{0, 2}, Vector2D{1, 0}, 0, false},
		{"Parallel", Vector2D{0, 0}, Vector2D{0, 1}, 0, false},
		{"Hits endpoint", Vector2D{0, 1}, Vector2D{1, 0}, 2, true},
		{"Origin on wall", Vector2D{2, 0}, Vector2D{1, 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := wall.RayIntersect(tt.origin, tt.dir)
			if ok != tt.wantOK {
				t.Fatalf("RayIntersect ok = %v; want %v", ok, tt.wantOK)
			}
			if ok && !floatEquals(got, tt.wantT) {
				t.Errorf("RayIntersect t = %v; want %v", got, tt.wantT)
			}
		})
	}
}

func TestSegment_Midpoint(t *testing.T) {
	s := Segment{A: Vector2D{0, 0}, B: Vector2D{4, 2}}
	if got := s.Midpoint(); !got.Eq(Vector2D{2, 1}) {
		t.Errorf("Midpoint = %v; want (2, 1)", got)
	}
	if got := s.Len(); !floatEquals(got*got, 20) {
		t.Errorf("Len^2 = %v; want 20", got*got)
	}
}
