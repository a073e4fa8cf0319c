package burst

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

type circle struct {
	x, y, r, alpha float64
	clr            color.Color
}

type fakeCanvas struct {
	clears  int
	circles []circle
}

func (c *fakeCanvas) Clear() {
	c.clears++
	c.circles = c.circles[:0]
}

func (c *fakeCanvas) FillCircle(x, y, r float64, clr color.Color, alpha float64) {
	c.circles = append(c.circles, circle{x: x, y: y, r: r, alpha: alpha, clr: clr})
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewParticleSamplesWithinConfig(t *testing.T) {
	cfg := DefaultConfig()
	rng := testRand()

	for i := 0; i < 500; i++ {
		p := NewParticle(100, 200, &cfg, rng)
		if p.X != 100 || p.Y != 200 {
			t.Fatalf("particle should start at its origin, got (%g, %g)", p.X, p.Y)
		}
		if p.VX < -cfg.Speed || p.VX > cfg.Speed || p.VY < -cfg.Speed || p.VY > cfg.Speed {
			t.Fatalf("velocity (%g, %g) outside ±%g", p.VX, p.VY, cfg.Speed)
		}
		if p.Radius < cfg.SizeMin || p.Radius > cfg.SizeMax {
			t.Fatalf("radius %g outside [%g, %g]", p.Radius, cfg.SizeMin, cfg.SizeMax)
		}
		if p.Decay < cfg.DecayMin || p.Decay > cfg.DecayMax {
			t.Fatalf("decay %g outside [%g, %g]", p.Decay, cfg.DecayMin, cfg.DecayMax)
		}
		if p.Life != 1 {
			t.Fatalf("life should start at 1, got %g", p.Life)
		}
		if !inPalette(p.Color, cfg.Palette) {
			t.Fatalf("color %v not in palette", p.Color)
		}
	}
}

func inPalette(c color.Color, palette []color.Color) bool {
	for _, pc := range palette {
		if pc == c {
			return true
		}
	}
	return false
}

func TestUpdateKinematics(t *testing.T) {
	p := Particle{X: 10, Y: 20, VX: 2, VY: -3, Life: 1, Decay: 0.25}

	if !Update(&p, 0.5) {
		t.Fatalf("particle should survive its first update")
	}
	if p.X != 12 || p.Y != 17 {
		t.Fatalf("position should advance by the old velocity, got (%g, %g)", p.X, p.Y)
	}
	if p.VY != -2.5 || p.VX != 2 {
		t.Fatalf("gravity should only change vy, got (%g, %g)", p.VX, p.VY)
	}
	if p.Life != 0.75 {
		t.Fatalf("life should drop by decay, got %g", p.Life)
	}
}

func TestUpdateReportsDeathExactlyOnce(t *testing.T) {
	cases := []struct {
		name  string
		decay float64
	}{
		{"quarter", 0.25},
		{"min_default", 0.01},
		{"max_default", 0.03},
		{"odd", 0.07},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Particle{Life: 1, Decay: c.decay}
			prev := p.Life
			for i := 0; i < 1000; i++ {
				alive := Update(&p, 0.15)
				if p.Life >= prev {
					t.Fatalf("life did not decrease: %g -> %g", prev, p.Life)
				}
				prev = p.Life
				if alive != (p.Life > 0) {
					t.Fatalf("alive=%v with life %g", alive, p.Life)
				}
				if !alive {
					return
				}
			}
			t.Fatalf("particle never died")
		})
	}
}

func TestDrawUsesLifeAsOpacity(t *testing.T) {
	c := &fakeCanvas{}
	clr := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	p := Particle{X: 5, Y: 6, Radius: 3, Color: clr, Life: 0.4}

	Draw(&p, c)
	if len(c.circles) != 1 {
		t.Fatalf("expected one circle, got %d", len(c.circles))
	}
	got := c.circles[0]
	if got.x != 5 || got.y != 6 || got.r != 3 || got.alpha != 0.4 || got.clr != clr {
		t.Fatalf("unexpected circle %+v", got)
	}

	p.Life = -0.2
	Draw(&p, c)
	if c.circles[1].alpha != 0 {
		t.Fatalf("negative life should clamp to zero opacity, got %g", c.circles[1].alpha)
	}
}
