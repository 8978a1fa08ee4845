package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lao-tseu-is-alive/go-steering/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-steering/pkg/steering"
	"github.com/lao-tseu-is-alive/go-steering/pkg/world"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema string

const schemaURL = "config.schema.json"

var (
	ErrInvalidWorld = errors.New("invalid world dimensions")
	ErrInvalidAgent = errors.New("invalid agent")
)

// AgentSpec describes one agent to spawn.
type AgentSpec struct {
	Name     string  `json:"name"`
	Behavior string  `json:"behavior"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx,omitempty"`
	VY       float64 `json:"vy,omitempty"`
}

// WallSpec is a wall segment in world units.
type WallSpec struct {
	X1    float64            `json:"x1"`
	Y1    float64            `json:"y1"`
	X2    float64            `json:"x2"`
	Y2    float64            `json:"y2"`
	Layer steering.LayerMask `json:"layer,omitempty"`
}

type Config struct {
	// World dimensions, in world units
	WorldWidth    float64 `json:"worldWidth"`
	WorldHeight   float64 `json:"worldHeight"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
	BoundaryWalls bool    `json:"boundaryWalls"` // close the world with four walls

	Steering steering.Config   `json:"steering"`
	Target   *geometry.Vector2D `json:"target,omitempty"`
	Agents   []AgentSpec        `json:"agents"`
	Walls    []WallSpec         `json:"walls"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:    20,
		WorldHeight:   15,
		PixelsPerUnit: 40,
		BoundaryWalls: true,
		Steering:      steering.DefaultConfig(),
		Target:        &geometry.Vector2D{X: 15, Y: 7.5},
		Agents: []AgentSpec{
			{Name: "seeker-000", Behavior: "seek", X: 3, Y: 3},
			{Name: "seeker-001", Behavior: "seek", X: 3, Y: 12},
			{Name: "evader-000", Behavior: "evade", X: 12, Y: 9},
			{Name: "idler-000", Behavior: "idle", X: 10, Y: 3, VX: 2, VY: 1},
		},
		Walls: []WallSpec{
			{X1: 8, Y1: 4, X2: 8, Y2: 11, Layer: 1},
			{X1: 11, Y1: 2, X2: 14, Y2: 5, Layer: 1},
		},
	}
}

// LoadConfig reads a JSON or YAML scenario, validates it against the JSON schema
// and returns it on top of DefaultConfig. An empty schemaFile selects the embedded schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		if raw, err = yamlToJSON(raw); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
	}

	return parseConfig(sch, raw)
}

func parseConfig(sch *jsonschema.Schema, raw []byte) (*Config, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	// a scenario that lists its own agents, walls or target replaces the defaults entirely
	cfg.Agents, cfg.Walls, cfg.Target = nil, nil, nil
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile == "" {
		return jsonschema.CompileString(schemaURL, configSchema)
	}
	return jsonschema.Compile(schemaFile)
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// Validate checks what the schema cannot express: radii ordering and unique agent names.
func (c *Config) Validate() error {
	if !(c.WorldWidth > 0 && c.WorldHeight > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidWorld, c.WorldWidth, c.WorldHeight)
	}
	if err := c.Steering.Validate(); err != nil {
		return fmt.Errorf("steering: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Agents))
	for i, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("%w: agent #%d has no name", ErrInvalidAgent, i)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidAgent, a.Name)
		}
		seen[a.Name] = struct{}{}
		if _, err := steering.ParseBehavior(a.Behavior); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidAgent, a.Name, err)
		}
	}
	return nil
}

// BuildWorld turns the wall specs into a world the agents can ray cast against.
func (c *Config) BuildWorld() *world.World {
	walls := make([]world.Wall, 0, len(c.Walls)+4)
	for _, w := range c.Walls {
		layer := w.Layer
		if layer == 0 {
			layer = 1
		}
		walls = append(walls, world.Wall{
			Segment: geometry.Segment{
				A: geometry.Vector2D{X: w.X1, Y: w.Y1},
				B: geometry.Vector2D{X: w.X2, Y: w.Y2},
			},
			Layer: layer,
		})
	}
	if c.BoundaryWalls {
		walls = append(walls, world.Box(geometry.Vector2D{}, geometry.Vector2D{X: c.WorldWidth, Y: c.WorldHeight}, 1)...)
	}
	return world.New(walls...)
}
