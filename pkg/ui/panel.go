package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the panel can lay out vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	MoveTo(x, y float64)
}

type heading struct {
	title string
	x, y  float64
}

func (h *heading) Update()             {}
func (h *heading) MoveTo(x, y float64) { h.x, h.y = x, y }
func (h *heading) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, h.title, int(h.x), int(h.y))
	vector.StrokeLine(screen, float32(h.x), float32(h.y+16), float32(h.x+120), float32(h.y+16), 1,
		color.RGBA{R: 120, G: 120, B: 140, A: 255}, true)
}

// Panel stacks widgets in a column at a fixed screen position.
type Panel struct {
	X, Y, Width, Height float64

	widgets []Widget
	cursor  float64
	padding float64
}

func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{X: x, Y: y, Width: width, Height: height, padding: 12, cursor: 12}
}

func (p *Panel) place(w Widget, advance float64) {
	w.MoveTo(p.X+p.padding, p.Y+p.cursor)
	p.cursor += advance
	p.widgets = append(p.widgets, w)
}

func (p *Panel) AddSection(title string) {
	p.place(&heading{title: title}, 26)
}

func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(0, 0, p.Width-2*p.padding, label, min, max, value)
	p.place(s, s.Height())
	return s
}

func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(0, 0, label, value)
	p.place(c, c.Height())
	return c
}

func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.Width-2*p.padding, label, onClick)
	p.place(b, b.Height+8)
	return b
}

func (p *Panel) Update() {
	for _, w := range p.widgets {
		w.Update()
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		color.RGBA{R: 30, G: 30, B: 40, A: 230}, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 1,
		color.RGBA{R: 100, G: 100, B: 120, A: 255}, false)
	for _, w := range p.widgets {
		w.Draw(screen)
	}
}
