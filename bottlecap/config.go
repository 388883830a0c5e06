package bottlecap

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfig = errors.New("invalid cap config")
	ErrNilSurface    = errors.New("cap surface is nil")
)

// Config holds the tunables of a cap. It is fixed for the lifetime of the cap.
type Config struct {
	GlideFactor     float64 // velocity multiplier applied once per tick while gliding
	MinVelocity     float64 // rest threshold and release floor
	FlickPower      float64 // release speed per unit of pull
	MaxDragDistance float64
	BounceDamping   float64 // share of an axis' speed kept after hitting an edge
	ArrowDistance   float64 // indicator offset from the cap centre, visual only
}

func DefaultConfig() Config {
	return Config{
		GlideFactor:     0.95,
		MinVelocity:     1,
		FlickPower:      5,
		MaxDragDistance: 300,
		BounceDamping:   0.6,
		ArrowDistance:   80,
	}
}

func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"glide factor":      c.GlideFactor,
		"min velocity":      c.MinVelocity,
		"flick power":       c.FlickPower,
		"max drag distance": c.MaxDragDistance,
		"bounce damping":    c.BounceDamping,
		"arrow distance":    c.ArrowDistance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v: %w", name, v, ErrInvalidConfig)
		}
	}

	switch {
	case c.GlideFactor <= 0 || c.GlideFactor >= 1:
		return fmt.Errorf("glide factor must be in (0,1), got %v: %w", c.GlideFactor, ErrInvalidConfig)
	case c.MinVelocity <= 0:
		return fmt.Errorf("min velocity must be positive, got %v: %w", c.MinVelocity, ErrInvalidConfig)
	case c.FlickPower <= 0:
		return fmt.Errorf("flick power must be positive, got %v: %w", c.FlickPower, ErrInvalidConfig)
	case c.MaxDragDistance <= 0:
		return fmt.Errorf("max drag distance must be positive, got %v: %w", c.MaxDragDistance, ErrInvalidConfig)
	case c.BounceDamping < 0 || c.BounceDamping > 1:
		return fmt.Errorf("bounce damping must be in [0,1], got %v: %w", c.BounceDamping, ErrInvalidConfig)
	case c.ArrowDistance < 0:
		return fmt.Errorf("arrow distance must not be negative, got %v: %w", c.ArrowDistance, ErrInvalidConfig)
	}

	return nil
}
