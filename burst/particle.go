package burst

import (
	"image/color"
	"math/rand/v2"

	"github.com/milk9111/clickburst/common"
)

// Canvas is the surface particles are painted on.
type Canvas interface {
	// Clear erases every pixel.
	Clear()
	// FillCircle paints a filled circle with clr scaled by alpha in [0,1].
	FillCircle(x, y, radius float64, clr color.Color, alpha float64)
}

// Particle is one short-lived dot of a burst. Life starts at 1 and drops by
// Decay on every Update.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  color.Color
	Radius float64
	Life   float64
	Decay  float64
}

// NewParticle samples a particle at (x, y) from cfg.
func NewParticle(x, y float64, cfg *Config, rng *rand.Rand) Particle {
	p := Particle{
		X:      x,
		Y:      y,
		VX:     common.RandRange(-cfg.Speed, cfg.Speed, rng.Float64()),
		VY:     common.RandRange(-cfg.Speed, cfg.Speed, rng.Float64()),
		Radius: common.RandRange(cfg.SizeMin, cfg.SizeMax, rng.Float64()),
		Life:   1,
		Decay:  common.RandRange(cfg.DecayMin, cfg.DecayMax, rng.Float64()),
	}
	if n := len(cfg.Palette); n > 0 {
		p.Color = cfg.Palette[rng.IntN(n)]
	}
	return p
}

// Update advances p by one frame and reports whether it is still alive.
func Update(p *Particle, gravity float64) bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.Life -= p.Decay
	return p.Life > 0
}

// Draw paints p with an opacity equal to its remaining life.
func Draw(p *Particle, c Canvas) {
	if c == nil {
		return
	}
	c.FillCircle(p.X, p.Y, p.Radius, p.Color, common.Clamp01(p.Life))
}
