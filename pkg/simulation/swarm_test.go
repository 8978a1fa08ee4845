package simulation

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-steering/pkg/steering"
)

func testConfig() *Config {
	return &Config{
		WorldWidth:  40,
		WorldHeight: 20,
		Steering:    steering.DefaultConfig(),
		Target:      &geometry.Vector2D{X: 12, Y: 2},
		Agents: []AgentSpec{
			{Name: "seeker", Behavior: "seek", X: 2, Y: 2},
			{Name: "evader", Behavior: "evade", X: 10, Y: 2},
			{Name: "idler", Behavior: "idle", X: 30, Y: 10, VX: 2},
		},
	}
}

func startSwarm(t *testing.T, cfg *Config) *Swarm {
	t.Helper()
	ctx := context.Background()
	s, err := NewSwarm(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("NewSwarm() = %v", err)
	}
	t.Cleanup(func() { _ = s.Stop(ctx) })
	return s
}

func byID(snaps []Snapshot) map[string]Snapshot {
	m := make(map[string]Snapshot, len(snaps))
	for _, s := range snaps {
		m[s.ID] = s
	}
	return m
}

func TestSwarm_Step(t *testing.T) {
	ctx := context.Background()
	s := startSwarm(t, testConfig())
	target := *s.Target()

	initial, err := s.Snapshots(ctx)
	if err != nil {
		t.Fatalf("Snapshots() = %v", err)
	}
	if len(initial) != 3 {
		t.Fatalf("snapshots = %d; want 3", len(initial))
	}
	if initial[0].ID != "evader" || initial[1].ID != "idler" || initial[2].ID != "seeker" {
		t.Errorf("snapshots not sorted by id: %v, %v, %v", initial[0].ID, initial[1].ID, initial[2].ID)
	}
	before := byID(initial)

	var last map[string]Snapshot
	for i := 0; i < 25; i++ {
		snaps, err := s.Step(ctx)
		if err != nil {
			t.Fatalf("Step() = %v", err)
		}
		last = byID(snaps)
	}
	if s.Ticks() != 25 {
		t.Errorf("Ticks() = %d; want 25", s.Ticks())
	}

	seeker := last["seeker"]
	if seeker.State != steering.StateSeek || seeker.Label != "SEEK" {
		t.Errorf("seeker state = %v (%q); want Seek", seeker.State, seeker.Label)
	}
	if seeker.Position.DistanceTo(target) >= before["seeker"].Position.DistanceTo(target) {
		t.Errorf("seeker did not close in: %v", seeker.Position)
	}

	evader := last["evader"]
	if evader.State != steering.StateEvade {
		t.Errorf("evader state = %v; want Evade", evader.State)
	}
	if evader.Position.DistanceTo(target) <= before["evader"].Position.DistanceTo(target) {
		t.Errorf("evader did not flee: %v", evader.Position)
	}

	idler := last["idler"]
	if idler.State != steering.StateIdle || idler.Velocity.Len() >= 2 {
		t.Errorf("idler = %v with velocity %v; want Idle and slowing down", idler.State, idler.Velocity)
	}
	for _, snap := range last {
		if snap.Velocity.Len() > steering.DefaultConfig().MaxSpeed+1e-9 {
			t.Errorf("%s speed %v exceeds max", snap.ID, snap.Velocity.Len())
		}
	}
}

func TestSwarm_NoTarget(t *testing.T) {
	ctx := context.Background()
	s := startSwarm(t, testConfig())
	s.SetTarget(nil)

	snaps, err := s.Step(ctx)
	if err != nil {
		t.Fatalf("Step() = %v", err)
	}
	idler := byID(snaps)["idler"]
	if !idler.Velocity.Eq(geometry.Vector2D{X: 2}) {
		t.Errorf("idler velocity = %v; want unchanged without target", idler.Velocity)
	}
	if !idler.Position.Eq(geometry.Vector2D{X: 30.04, Y: 10}) {
		t.Errorf("idler position = %v; want integrated by one tick", idler.Position)
	}
}

func TestSwarm_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Steering.ArriveRadius = cfg.Steering.StopRadius
	if _, err := NewSwarm(context.Background(), cfg, nil); err == nil {
		t.Fatal("NewSwarm() with arrive == stop = nil; want error")
	}
}

func TestSwarm_RunRecordsTrace(t *testing.T) {
	ctx := context.Background()
	s := startSwarm(t, testConfig())
	rec := NewRecorder()

	if err := s.Run(ctx, 10, rec); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	rows := rec.Rows()
	if len(rows) != 30 {
		t.Fatalf("rows = %d; want 10 ticks x 3 agents", len(rows))
	}
	if rows[0].Tick != 1 || rows[len(rows)-1].Tick != 10 {
		t.Errorf("tick range = %d..%d; want 1..10", rows[0].Tick, rows[len(rows)-1].Tick)
	}
	if !rows[0].HasTarget || rows[0].TargetX != 12 {
		t.Errorf("first row target = %+v", rows[0])
	}

	var buf bytes.Buffer
	if err := rec.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() = %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if len(records) != 31 {
		t.Fatalf("csv records = %d; want header + 30", len(records))
	}
	if records[0][0] != "tick" || records[0][3] != "state" {
		t.Errorf("csv header = %v", records[0])
	}
}

func TestTickMessage(t *testing.T) {
	msg, err := NewTick(&geometry.Vector2D{X: 1, Y: -2})
	if err != nil {
		t.Fatalf("NewTick() = %v", err)
	}
	if messageKind(msg) != kindTick {
		t.Errorf("kind = %q; want tick", messageKind(msg))
	}
	if got := tickTarget(msg); got == nil || !got.Eq(geometry.Vector2D{X: 1, Y: -2}) {
		t.Errorf("target = %v; want (1, -2)", got)
	}

	msg, _ = NewTick(nil)
	if got := tickTarget(msg); got != nil {
		t.Errorf("target = %v; want none", got)
	}

	if _, err := SnapshotFromProto(msg); err == nil {
		t.Error("SnapshotFromProto(tick) = nil error; want kind mismatch")
	}
}
