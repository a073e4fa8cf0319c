package render

import (
	"time"

	"github.com/milk9111/clickburst/timing"
)

type Size struct {
	W, H int
}

// Viewport follows the sizes the host reports and resizes the surface once
// they settle. Only the last size of a burst reaches the surface.
type Viewport struct {
	surface  *Surface
	reported Size
	settle   *timing.Debounce[Size]
	resized  bool
	onResize func(Size)
}

// NewViewport starts from the surface's current size. onResize, if set,
// runs after each real change of the surface.
func NewViewport(s *Surface, settle time.Duration, onResize func(Size)) *Viewport {
	v := &Viewport{surface: s, onResize: onResize}
	v.reported.W, v.reported.H = s.Size()
	v.settle = timing.NewDebounce(settle, v.apply)
	return v
}

// Observe records a size from the host's layout pass. Repeats of the last
// reported size are ignored; anything else restarts the settle delay.
func (v *Viewport) Observe(now time.Time, w, h int) bool {
	sz := Size{w, h}
	if sz == v.reported {
		return false
	}
	v.reported = sz
	v.settle.Call(now, sz)
	return true
}

// Poll applies a settled size. It reports whether the surface changed.
func (v *Viewport) Poll(now time.Time) bool {
	v.resized = false
	v.settle.Poll(now)
	return v.resized
}

func (v *Viewport) Pending() bool {
	return v.settle.Pending()
}

func (v *Viewport) apply(sz Size) {
	if !v.surface.Resize(sz.W, sz.H) {
		return
	}
	v.resized = true
	if v.onResize != nil {
		w, h := v.surface.Size()
		v.onResize(Size{w, h})
	}
}
