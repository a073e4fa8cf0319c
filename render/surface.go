package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the transparent overlay particles are painted on. It covers
// the viewport and is composited above the page every frame; it never
// takes part in hit testing.
type Surface struct {
	img  *ebiten.Image
	w, h int
}

func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.Resize(w, h)
	return s
}

// Resize reallocates the backing image when the size changes. Pixel
// contents are dropped; the next tick repaints them.
func (s *Surface) Resize(w, h int) bool {
	w, h = max(w, 1), max(h, 1)
	if s.img != nil && w == s.w && h == s.h {
		return false
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
	s.w, s.h = w, h
	return true
}

func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

func (s *Surface) Clear() {
	s.img.Clear()
}

func (s *Surface) FillCircle(x, y, radius float64, clr color.Color, alpha float64) {
	if alpha <= 0 || radius <= 0 || clr == nil {
		return
	}
	vector.FillCircle(s.img, float32(x), float32(y), float32(radius), fade(clr, alpha), true)
}

// DrawTo composites the overlay onto screen.
func (s *Surface) DrawTo(screen *ebiten.Image) {
	if s.img == nil || screen == nil {
		return
	}
	screen.DrawImage(s.img, nil)
}

// fade scales a premultiplied color by alpha.
func fade(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
