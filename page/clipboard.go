package page

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

var ErrNoCopyTarget = errors.New("page: copy target not found")

// Clipboard writes text for copy buttons. When the system clipboard is
// unavailable, copies are logged and dropped.
type Clipboard struct {
	write func(text string)
	log   *zap.SugaredLogger
}

// NewSystemClipboard initializes the OS clipboard.
func NewSystemClipboard(log *zap.SugaredLogger) *Clipboard {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if err := clipboard.Init(); err != nil {
		log.Warnw("clipboard unavailable; copy buttons disabled", "err", err)
		return &Clipboard{log: log}
	}
	return &Clipboard{
		log: log,
		write: func(text string) {
			clipboard.Write(clipboard.FmtText, []byte(text))
		},
	}
}

// NewClipboard wraps an arbitrary writer.
func NewClipboard(write func(text string), log *zap.SugaredLogger) *Clipboard {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Clipboard{write: write, log: log}
}

func (c *Clipboard) Available() bool {
	return c != nil && c.write != nil
}

// Copy writes text and reports whether it reached a clipboard.
func (c *Clipboard) Copy(text string) bool {
	if !c.Available() {
		return false
	}
	c.write(text)
	c.log.Debugw("copied to clipboard", "bytes", len(text))
	return true
}

// CopySource returns the text a copy button copies: the element named by
// its target, or else the first code block sharing its parent.
func CopySource(doc, button *Element) (string, error) {
	if button == nil {
		return "", ErrNoCopyTarget
	}
	if button.Target != "" {
		if src := doc.Find(button.Target); src != nil {
			return src.TextContent(), nil
		}
		return "", fmt.Errorf("%w: #%s", ErrNoCopyTarget, button.Target)
	}
	code := Selector{Tag: "code"}
	pre := Selector{Tag: "pre"}
	for _, sib := range button.Parent().Children() {
		if code.Matches(sib) || pre.Matches(sib) {
			return sib.TextContent(), nil
		}
	}
	return "", ErrNoCopyTarget
}
