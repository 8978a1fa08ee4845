package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-steering/pkg/steering"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages exchanged with agent actors are structpb envelopes tagged by "kind".
const (
	kindTick     = "tick"
	kindGetState = "getState"
	kindSnapshot = "snapshot"
)

// Snapshot is the state an agent reports after a tick.
type Snapshot struct {
	ID       string
	Behavior steering.Behavior
	State    steering.State
	Label    string // as published to the display sink
	Position geometry.Vector2D
	Velocity geometry.Vector2D
}

func pointValue(p geometry.Vector2D) map[string]interface{} {
	return map[string]interface{}{"x": p.X, "y": p.Y}
}

func pointFromStruct(s *structpb.Struct) geometry.Vector2D {
	f := s.GetFields()
	return geometry.Vector2D{X: f["x"].GetNumberValue(), Y: f["y"].GetNumberValue()}
}

// NewTick builds the message advancing an agent one fixed step. A nil target means "no target this tick".
func NewTick(target *geometry.Vector2D) (*structpb.Struct, error) {
	fields := map[string]interface{}{"kind": kindTick}
	if target != nil {
		fields["target"] = pointValue(*target)
	}
	return structpb.NewStruct(fields)
}

// NewGetState builds the message asking an agent for its snapshot without ticking it.
func NewGetState() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{"kind": kindGetState})
}

func messageKind(msg *structpb.Struct) string {
	return msg.GetFields()["kind"].GetStringValue()
}

func tickTarget(msg *structpb.Struct) *geometry.Vector2D {
	t := msg.GetFields()["target"].GetStructValue()
	if t == nil {
		return nil
	}
	p := pointFromStruct(t)
	return &p
}

// ToProto wraps the snapshot in a structpb envelope.
func (s Snapshot) ToProto() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"kind":     kindSnapshot,
		"id":       s.ID,
		"behavior": s.Behavior.String(),
		"state":    s.State.String(),
		"label":    s.Label,
		"position": pointValue(s.Position),
		"velocity": pointValue(s.Velocity),
	})
}

// SnapshotFromProto is the inverse of Snapshot.ToProto.
func SnapshotFromProto(msg *structpb.Struct) (Snapshot, error) {
	if kind := messageKind(msg); kind != kindSnapshot {
		return Snapshot{}, fmt.Errorf("unexpected message kind %q", kind)
	}
	f := msg.GetFields()
	behavior, err := steering.ParseBehavior(f["behavior"].GetStringValue())
	if err != nil {
		return Snapshot{}, err
	}
	state, err := steering.ParseState(f["state"].GetStringValue())
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:       f["id"].GetStringValue(),
		Behavior: behavior,
		State:    state,
		Label:    f["label"].GetStringValue(),
		Position: pointFromStruct(f["position"].GetStructValue()),
		Velocity: pointFromStruct(f["velocity"].GetStructValue()),
	}, nil
}
