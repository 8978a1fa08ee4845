package ui

import "testing"

func TestSlider_SetClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Inside", 2.5, 2.5},
		{"Below", -1, 0},
		{"Above", 12, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 0, 100, "x", 0, 10, 5)
			s.Set(tt.in)
			if s.Value != tt.want {
				t.Errorf("Value = %v; want %v", s.Value, tt.want)
			}
		})
	}
}

func TestSlider_Changed(t *testing.T) {
	s := NewSlider(0, 0, 100, "x", 0, 10, 5)
	if s.Changed() {
		t.Error("fresh slider reports a change")
	}
	s.Set(5)
	if s.Changed() {
		t.Error("setting the same value reports a change")
	}
	s.Set(6)
	if !s.Changed() {
		t.Error("Changed() = false after Set(6)")
	}
	if s.Changed() {
		t.Error("Changed() should reset after being read")
	}
}

func TestPanel_LaysOutTopDown(t *testing.T) {
	p := NewPanel(500, 0, 200, 400)
	p.AddSection("Steering")
	a := p.AddSlider("a", 0, 1, 0.5)
	b := p.AddSlider("b", 0, 1, 0.5)
	c := p.AddCheckbox("c", true)
	if a.X != 512 || b.Y <= a.Y || c.Y <= b.Y {
		t.Errorf("layout a=(%v,%v) b=%v c=%v", a.X, a.Y, b.Y, c.Y)
	}
	if a.W != 176 {
		t.Errorf("slider width = %v; want panel width minus padding", a.W)
	}
}
