package render

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-steering/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-steering/pkg/steering"
	"github.com/lao-tseu-is-alive/go-steering/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

const (
	panelWidth    = 240
	minHeight     = 520
	agentSize     = 0.35 // world units, tip to center
	statusPadding = 8
)

var (
	background = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	wallColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	probeClear = color.RGBA{R: 80, G: 160, B: 80, A: 255}
	probeHit   = color.RGBA{R: 255, G: 90, B: 60, A: 255}
	targetDot  = color.RGBA{R: 255, G: 220, B: 0, A: 255}

	stateColors = map[steering.State]color.RGBA{
		steering.StateIdle:   {R: 150, G: 150, B: 150, A: 255},
		steering.StateArrive: {R: 100, G: 200, B: 255, A: 255},
		steering.StateSeek:   {R: 100, G: 255, B: 120, A: 255},
		steering.StateEvade:  {R: 255, G: 100, B: 100, A: 255},
	}
)

// Game is the interactive window: the swarm on the left, tuning panel on the right.
// The target follows the mouse; the right button toggles it on and off.
type Game struct {
	ctx    context.Context
	logger golog.Logger
	cfg    *simulation.Config
	swarm  *simulation.Swarm
	view   Viewport
	snaps  []simulation.Snapshot

	gizmos map[steering.Behavior]*steering.Controller
	white  *ebiten.Image

	panel          *ui.Panel
	maxSpeed       *ui.Slider
	deceleration   *ui.Slider
	stopRadius     *ui.Slider
	arriveRadius   *ui.Slider
	evadeRadius    *ui.Slider
	contourDist    *ui.Slider
	contourStep    *ui.Slider
	showGizmos     *ui.Checkbox
	showProbes     *ui.Checkbox
	paused         *ui.Checkbox
	restartPending bool

	targetOn bool
	status   string
}

// NewGame starts a swarm for cfg and builds the tuning panel around its steering settings.
func NewGame(ctx context.Context, cfg *simulation.Config, logger golog.Logger) (*Game, error) {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	g := &Game{
		ctx:      ctx,
		logger:   logger,
		cfg:      cfg,
		view:     Viewport{PixelsPerUnit: cfg.PixelsPerUnit},
		targetOn: cfg.Target != nil,
	}
	if err := g.start(cfg); err != nil {
		return nil, err
	}
	g.buildPanel()
	return g, nil
}

func (g *Game) worldPixels() (int, int) {
	return int(math.Ceil(g.cfg.WorldWidth * g.cfg.PixelsPerUnit)), int(math.Ceil(g.cfg.WorldHeight * g.cfg.PixelsPerUnit))
}

func (g *Game) buildPanel() {
	w, h := g.worldPixels()
	if h < minHeight {
		h = minHeight
	}
	s := g.cfg.Steering
	p := ui.NewPanel(float64(w), 0, panelWidth, float64(h))

	p.AddSection("Steering")
	g.maxSpeed = p.AddSlider("Max speed", 0.5, 12, s.MaxSpeed)
	g.deceleration = p.AddSlider("Deceleration", 0.05, 0.99, s.DecelerationFactor)
	g.stopRadius = p.AddSlider("Stop radius", 0.05, 3, s.StopRadius)
	g.arriveRadius = p.AddSlider("Arrive radius", 0.1, 6, s.ArriveRadius)
	g.evadeRadius = p.AddSlider("Evade radius", 0.5, 12, s.EvadeRadius)

	p.AddSection("Contour")
	g.contourDist = p.AddSlider("Probe length", 0.1, 6, s.ContourDistance)
	g.contourStep = p.AddSlider("Probe angle", 1, 60, s.ContourAngleStep)

	p.AddSection("Display")
	g.showGizmos = p.AddCheckbox("Gizmos", true)
	g.showProbes = p.AddCheckbox("Probes", true)
	g.paused = p.AddCheckbox("Paused", false)
	p.AddButton("Apply & restart", func() { g.restartPending = true })

	g.panel = p
}

func (g *Game) start(cfg *simulation.Config) error {
	swarm, err := simulation.NewSwarm(g.ctx, cfg, g.logger)
	if err != nil {
		return err
	}
	gizmos := make(map[steering.Behavior]*steering.Controller, 3)
	for _, b := range []steering.Behavior{steering.BehaviorIdle, steering.BehaviorSeek, steering.BehaviorEvade} {
		c, err := steering.NewController(cfg.Steering, b)
		if err != nil {
			_ = swarm.Stop(g.ctx)
			return err
		}
		gizmos[b] = c
	}
	if g.swarm != nil {
		if err := g.swarm.Stop(g.ctx); err != nil {
			g.logger.Errorf("stopping previous swarm: %v", err)
		}
	}
	g.swarm, g.cfg, g.gizmos = swarm, cfg, gizmos
	g.snaps, err = swarm.Snapshots(g.ctx)
	return err
}

// restart applies the panel values and respawns every agent from its configured start.
func (g *Game) restart() {
	next := *g.cfg
	next.Steering.MaxSpeed = g.maxSpeed.Value
	next.Steering.DecelerationFactor = g.deceleration.Value
	next.Steering.StopRadius = g.stopRadius.Value
	next.Steering.ArriveRadius = g.arriveRadius.Value
	next.Steering.EvadeRadius = g.evadeRadius.Value
	next.Steering.ContourDistance = g.contourDist.Value
	next.Steering.ContourAngleStep = g.contourStep.Value
	if t := g.swarm.Target(); t != nil {
		next.Target = t
	}

	if err := g.start(&next); err != nil {
		g.status = err.Error()
		g.logger.Errorf("restart rejected: %v", err)
		return
	}
	g.status = ""
	g.logger.Infof("swarm restarted with %+v", next.Steering)
}

func (g *Game) updateTarget() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.targetOn = !g.targetOn
	}
	if !g.targetOn {
		g.swarm.SetTarget(nil)
		return
	}
	mx, my := ebiten.CursorPosition()
	w, h := g.worldPixels()
	if mx >= 0 && my >= 0 && mx < w && my < h {
		p := g.view.ToWorld(mx, my)
		g.swarm.SetTarget(&p)
		return
	}
	if g.swarm.Target() == nil {
		// re-enabled while the cursor is over the panel
		c := geometry.Vector2D{X: g.cfg.WorldWidth / 2, Y: g.cfg.WorldHeight / 2}
		g.swarm.SetTarget(&c)
	}
}

func (g *Game) Update() error {
	g.panel.Update()
	if g.restartPending {
		g.restartPending = false
		g.restart()
	}
	g.updateTarget()
	if g.paused.Value {
		return nil
	}
	snaps, err := g.swarm.Step(g.ctx)
	if err != nil {
		return fmt.Errorf("tick %d: %w", g.swarm.Ticks(), err)
	}
	g.snaps = snaps
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.white == nil {
		g.white = ebiten.NewImage(3, 3)
		g.white.Fill(color.White)
	}

	for _, w := range g.swarm.World().Walls() {
		x0, y0 := g.view.ToScreen(w.A)
		x1, y1 := g.view.ToScreen(w.B)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, wallColor, true)
	}

	target := g.swarm.Target()
	giz := screenGizmos{screen: screen, view: g.view}
	for _, s := range g.snaps {
		if g.showGizmos.Value {
			g.gizmos[s.Behavior].DrawGizmos(s.Position, target, giz)
		}
		if g.showProbes.Value {
			g.drawProbes(giz, s)
		}
		g.drawAgent(screen, s)
	}
	if target != nil {
		x, y := g.view.ToScreen(*target)
		vector.FillCircle(screen, x, y, 4, targetDot, true)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("Tick: %d  Agents: %d  TPS: %.0f", g.swarm.Ticks(), len(g.snaps), ebiten.ActualTPS())
	if !g.targetOn {
		msg += "  (no target, right click)"
	}
	_, h := g.worldPixels()
	ebitenutil.DebugPrintAt(screen, msg, statusPadding, h-20)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, statusPadding, statusPadding)
	}
}

// drawProbes shows the two contour rays the controller casts, red where they touch a wall.
func (g *Game) drawProbes(d screenGizmos, s simulation.Snapshot) {
	if s.Velocity.IsZero() {
		return
	}
	st := g.cfg.Steering
	heading := s.Velocity.Normalize()
	for _, sign := range []float64{-1, 1} {
		dir := heading.RotateDegrees(sign * st.ContourAngleStep)
		end := s.Position.Add(dir.Mul(st.ContourDistance))
		c := probeClear
		if hit, ok := g.swarm.World().Cast(s.Position, dir, st.ContourDistance, st.WallLayer); ok {
			end, c = hit.Point, probeHit
		}
		d.Line(s.Position, end, c)
	}
}

func (g *Game) drawAgent(screen *ebiten.Image, s simulation.Snapshot) {
	angle := 0.0
	if !s.Velocity.IsZero() {
		angle = s.Velocity.Angle()
	}
	tip := s.Position.Add(geometry.FromAngle(agentSize, angle))
	right := s.Position.Add(geometry.FromAngle(agentSize*0.8, angle+2.5))
	left := s.Position.Add(geometry.FromAngle(agentSize*0.8, angle-2.5))

	c := stateColors[s.State]
	r, gr, b := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	vertices := make([]ebiten.Vertex, 0, 3)
	for _, p := range []geometry.Vector2D{tip, right, left} {
		x, y := g.view.ToScreen(p)
		vertices = append(vertices, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: 1,
		})
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, g.white, &ebiten.DrawTrianglesOptions{})

	x, y := g.view.ToScreen(s.Position)
	ebitenutil.DebugPrintAt(screen, s.Label, int(x)+8, int(y)-18)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.worldPixels()
	if h < minHeight {
		h = minHeight
	}
	return w + panelWidth, h
}

// WindowSize is the size Layout reports, for ebiten.SetWindowSize.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Close stops the running swarm.
func (g *Game) Close() error {
	return g.swarm.Stop(g.ctx)
}
