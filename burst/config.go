package burst

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/milk9111/clickburst/timing"
)

var (
	ErrInvalidCount  = errors.New("burst: particle count must be positive")
	ErrInvalidSpeed  = errors.New("burst: speed must not be negative")
	ErrInvalidSize   = errors.New("burst: size range must be positive and ordered")
	ErrInvalidDecay  = errors.New("burst: decay range must be positive and ordered")
	ErrEmptyPalette  = errors.New("burst: palette is empty")
	ErrInvalidWindow = errors.New("burst: durations must not be negative")
	ErrInvalidCap    = errors.New("burst: max active must not be negative")
)

// Config holds the effect tunables. They are fixed once an Engine is built.
type Config struct {
	// Count is the number of particles spawned per burst.
	Count int
	// Speed scales the per-axis initial velocity, sampled from [-Speed, Speed].
	Speed float64
	// SizeMin and SizeMax bound the particle radius in pixels.
	SizeMin float64
	SizeMax float64
	// DecayMin and DecayMax bound the life lost per frame.
	DecayMin float64
	DecayMax float64
	// Gravity is added to the vertical velocity every frame.
	Gravity float64
	Palette []color.Color
	// MaxActive caps live particles. Zero disables the cap.
	MaxActive int

	ThrottleWindow time.Duration
	ThrottleEdge   timing.Edge
	ResizeSettle   time.Duration
}

// DefaultPalette is the twelve-color palette bursts draw from.
var DefaultPalette = []color.Color{
	color.NRGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
	color.NRGBA{R: 0xff, G: 0xa9, B: 0x4d, A: 0xff},
	color.NRGBA{R: 0xff, G: 0xd4, B: 0x3b, A: 0xff},
	color.NRGBA{R: 0xa9, G: 0xe3, B: 0x4b, A: 0xff},
	color.NRGBA{R: 0x51, G: 0xcf, B: 0x66, A: 0xff},
	color.NRGBA{R: 0x20, G: 0xc9, B: 0x97, A: 0xff},
	color.NRGBA{R: 0x22, G: 0xb8, B: 0xcf, A: 0xff},
	color.NRGBA{R: 0x33, G: 0x9a, B: 0xf0, A: 0xff},
	color.NRGBA{R: 0x5c, G: 0x7c, B: 0xfa, A: 0xff},
	color.NRGBA{R: 0x84, G: 0x5e, B: 0xf7, A: 0xff},
	color.NRGBA{R: 0xcc, G: 0x5d, B: 0xe8, A: 0xff},
	color.NRGBA{R: 0xf0, G: 0x65, B: 0x95, A: 0xff},
}

func DefaultConfig() Config {
	palette := make([]color.Color, len(DefaultPalette))
	copy(palette, DefaultPalette)
	return Config{
		Count:          30,
		Speed:          6,
		SizeMin:        2,
		SizeMax:        5,
		DecayMin:       0.01,
		DecayMax:       0.03,
		Gravity:        0.15,
		Palette:        palette,
		MaxActive:      1000,
		ThrottleWindow: 100 * time.Millisecond,
		ThrottleEdge:   timing.Trailing,
		ResizeSettle:   250 * time.Millisecond,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.Count <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidCount, c.Count))
	}
	if c.Speed < 0 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrInvalidSpeed, c.Speed))
	}
	if c.SizeMin <= 0 || c.SizeMax < c.SizeMin {
		errs = append(errs, fmt.Errorf("%w: [%g, %g]", ErrInvalidSize, c.SizeMin, c.SizeMax))
	}
	if c.DecayMin <= 0 || c.DecayMax < c.DecayMin {
		errs = append(errs, fmt.Errorf("%w: [%g, %g]", ErrInvalidDecay, c.DecayMin, c.DecayMax))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, ErrEmptyPalette)
	}
	if c.ThrottleWindow < 0 || c.ResizeSettle < 0 {
		errs = append(errs, fmt.Errorf("%w: throttle %s, settle %s", ErrInvalidWindow, c.ThrottleWindow, c.ResizeSettle))
	}
	if c.MaxActive < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidCap, c.MaxActive))
	}
	return errors.Join(errs...)
}

// Lifespan returns the longest number of frames a particle can live.
func (c Config) Lifespan() int {
	if c.DecayMin <= 0 {
		return 0
	}
	n := int(1 / c.DecayMin)
	if float64(n)*c.DecayMin < 1 {
		n++
	}
	return n
}
