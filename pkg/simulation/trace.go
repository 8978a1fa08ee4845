package simulation

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
)

// TraceRow is one agent at one tick.
type TraceRow struct {
	Tick      int     `csv:"tick"`
	Agent     string  `csv:"agent"`
	Behavior  string  `csv:"behavior"`
	State     string  `csv:"state"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	VX        float64 `csv:"vx"`
	VY        float64 `csv:"vy"`
	Speed     float64 `csv:"speed"`
	HasTarget bool    `csv:"has_target"`
	TargetX   float64 `csv:"target_x"`
	TargetY   float64 `csv:"target_y"`
	Distance  float64 `csv:"target_distance"`
}

// Recorder accumulates trace rows in memory until WriteCSV.
type Recorder struct {
	rows []TraceRow
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(tick int, target *geometry.Vector2D, snaps []Snapshot) {
	for _, s := range snaps {
		row := TraceRow{
			Tick:     tick,
			Agent:    s.ID,
			Behavior: s.Behavior.String(),
			State:    s.State.String(),
			X:        s.Position.X,
			Y:        s.Position.Y,
			VX:       s.Velocity.X,
			VY:       s.Velocity.Y,
			Speed:    s.Velocity.Len(),
		}
		if target != nil {
			row.HasTarget = true
			row.TargetX, row.TargetY = target.X, target.Y
			row.Distance = s.Position.DistanceTo(*target)
		}
		r.rows = append(r.rows, row)
	}
}

// Rows returns the recorded rows in recording order.
func (r *Recorder) Rows() []TraceRow {
	return r.rows
}

func (r *Recorder) WriteCSV(w io.Writer) error {
	return gocsv.Marshal(r.rows, w)
}
