package steering

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSpeed        = errors.New("maxSpeed must be positive")
	ErrInvalidDeceleration = errors.New("decelerationFactor must be in (0, 1)")
	ErrInvalidRadii        = errors.New("invalid steering radii")
	ErrInvalidTimestep     = errors.New("fixedDeltaTime must be positive")
	ErrInvalidContour      = errors.New("invalid contour settings")
	ErrUnknownBehavior     = errors.New("unknown behavior")
)

// LayerMask selects which wall layers a ray can hit. Bit n set means layer n is included.
type LayerMask uint32

// AllLayers matches every wall.
const AllLayers LayerMask = ^LayerMask(0)

// Contains reports whether the mask shares at least one layer with other.
func (m LayerMask) Contains(other LayerMask) bool {
	return m&other != 0
}

// Config holds the tuning of one controller. It is read-only once the controller is built.
type Config struct {
	MaxSpeed           float64 `json:"maxSpeed"`
	DecelerationFactor float64 `json:"decelerationFactor"` // velocity multiplier per idle tick

	ArriveRadius float64 `json:"arriveRadius"`
	StopRadius   float64 `json:"stopRadius"`
	EvadeRadius  float64 `json:"evadeRadius"`

	ContourDistance  float64   `json:"contourDistance"`  // probe ray length
	ContourAngleStep float64   `json:"contourAngleStep"` // degrees either side of the heading
	WallLayer        LayerMask `json:"wallLayer"`

	FixedDeltaTime float64 `json:"fixedDeltaTime"` // seconds per tick
}

func DefaultConfig() Config {
	return Config{
		MaxSpeed:           4,
		DecelerationFactor: 0.75,
		ArriveRadius:       1.2,
		StopRadius:         0.5,
		EvadeRadius:        5,
		ContourDistance:    2,
		ContourAngleStep:   10,
		WallLayer:          1,
		FixedDeltaTime:     0.02,
	}
}

// Validate rejects configurations the evaluators cannot run with.
func (c Config) Validate() error {
	if !(c.MaxSpeed > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, c.MaxSpeed)
	}
	if !(c.DecelerationFactor > 0 && c.DecelerationFactor < 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidDeceleration, c.DecelerationFactor)
	}
	if c.StopRadius < 0 || c.EvadeRadius < 0 {
		return fmt.Errorf("%w: radii must not be negative", ErrInvalidRadii)
	}
	if c.ArriveRadius <= c.StopRadius {
		return fmt.Errorf("%w: arriveRadius (%v) must exceed stopRadius (%v)", ErrInvalidRadii, c.ArriveRadius, c.StopRadius)
	}
	if c.ContourDistance < 0 {
		return fmt.Errorf("%w: contourDistance must not be negative", ErrInvalidContour)
	}
	if !(c.FixedDeltaTime > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidTimestep, c.FixedDeltaTime)
	}
	return nil
}

// ArriveFactor scales steering inside the arrive ring: about 0.01 at StopRadius
// and about 1.01 at ArriveRadius, linear in between.
func (c Config) ArriveFactor(distance float64) float64 {
	return 0.01 + (distance-c.StopRadius)/(c.ArriveRadius-c.StopRadius)
}

// SeekState classifies a distance to the target for the Seek behavior.
func (c Config) SeekState(distance float64) State {
	switch {
	case distance < c.StopRadius:
		return StateIdle
	case distance < c.ArriveRadius:
		return StateArrive
	default:
		return StateSeek
	}
}

// EvadeState classifies a distance to the target for the Evade behavior.
func (c Config) EvadeState(distance float64) State {
	if distance > c.EvadeRadius {
		return StateIdle
	}
	return StateEvade
}
