package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller turns this tick's left clicks and new touches into presses.
type Poller struct {
	touches []ebiten.TouchID
	focused bool
	seen    bool
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll pushes at most one mouse press and one touch press per tick. Only
// the first new touch point counts; a tick without one adds nothing.
func (p *Poller) Poll(q *Queue) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		q.Push(Press{Source: Mouse, X: x, Y: y})
	}

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if len(p.touches) == 0 {
		return
	}
	x, y := ebiten.TouchPosition(p.touches[0])
	q.Push(Press{Source: Touch, X: x, Y: y})
}

// FocusChanged reports a change in window focus since the previous call.
// The first call only records the initial state.
func (p *Poller) FocusChanged() (focused, changed bool) {
	now := ebiten.IsFocused()
	if !p.seen {
		p.seen = true
		p.focused = now
		return now, false
	}
	if now == p.focused {
		return now, false
	}
	p.focused = now
	return now, true
}
