package page

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/clickburst/prefabs"
	"go.uber.org/zap"
)

// Page is the demo document the burst effect is layered over.
type Page struct {
	UI *ebitenui.UI

	title string
	root  *widget.Container
	doc   *Element
	theme *theme
	clip  *Clipboard
	log   *zap.SugaredLogger

	// rows holds every container with its layout, parents first.
	rows []row
}

type row struct {
	c      *widget.Container
	layout *widget.RowLayout
}

type Option func(*Page)

func WithClipboard(c *Clipboard) Option {
	return func(p *Page) { p.clip = c }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(p *Page) {
		if log != nil {
			p.log = log
		}
	}
}

// Build lays out spec as an ebitenui tree. Every widget carries its
// *Element in CustomData.
func Build(spec prefabs.PageSpec, opts ...Option) (*Page, error) {
	th, err := newTheme(spec.FontSize, colorOf(spec.Background), colorOf(spec.Foreground))
	if err != nil {
		return nil, err
	}

	title := spec.Title
	if title == "" {
		title = "clickburst"
	}
	p := &Page{
		title: title,
		doc:   FromSpec(spec.Root),
		theme: th,
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.root = p.container(
		[]widget.ContainerOpt{widget.ContainerOpts.BackgroundImage(solidNineSlice(th.background))},
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
	)
	p.root.AddChild(p.build(spec.Root, p.doc))
	p.UI = &ebitenui.UI{Container: p.root}

	p.log.Debugw("page built", "title", p.title, "root", p.doc.String())
	return p, nil
}

func colorOf(c *prefabs.YAMLColor) color.Color {
	if c == nil {
		return nil
	}
	return c.Color
}

func (p *Page) build(spec prefabs.ElementSpec, el *Element) widget.PreferredSizeLocateableWidget {
	data := widget.WidgetOpts.CustomData(el)
	th := p.theme

	switch el.Tag {
	case "button", "select":
		label := el.Text
		if el.Tag == "select" {
			label += "  v"
		}
		return widget.NewButton(
			widget.ButtonOpts.WidgetOpts(data, minSize(spec)),
			widget.ButtonOpts.Image(th.button),
			widget.ButtonOpts.Text(label, th.face(el), th.buttonTxt),
			widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(8)),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				p.clicked(el)
			}),
		)
	case "input", "textarea":
		return widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(data, minSize(spec)),
			widget.TextInputOpts.Image(th.input),
			widget.TextInputOpts.Color(th.inputTxt),
			widget.TextInputOpts.Face(th.face(el)),
			widget.TextInputOpts.Placeholder(spec.Placeholder),
		)
	}

	if len(spec.Children) == 0 {
		return widget.NewText(
			widget.TextOpts.WidgetOpts(data),
			widget.TextOpts.Text(el.Text, th.face(el), th.textColor(el)),
		)
	}

	dir := widget.DirectionVertical
	if spec.Direction == "row" {
		dir = widget.DirectionHorizontal
	}
	layout := []widget.RowLayoutOpt{
		widget.RowLayoutOpts.Direction(dir),
		widget.RowLayoutOpts.Spacing(12),
	}
	containerOpts := []widget.ContainerOpt{widget.ContainerOpts.WidgetOpts(data)}
	if el.Tag == "pre" {
		layout = append(layout, widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)))
		containerOpts = append(containerOpts, widget.ContainerOpts.BackgroundImage(solidNineSlice(th.codeBG)))
	}
	c := p.container(containerOpts, layout...)
	// The label has no element of its own; hits on it resolve to el.
	if el.Text != "" {
		c.AddChild(widget.NewText(widget.TextOpts.Text(el.Text, th.face(el), th.textColor(el))))
	}
	for i, child := range spec.Children {
		c.AddChild(p.build(child, el.children[i]))
	}
	return c
}

func (p *Page) container(opts []widget.ContainerOpt, layout ...widget.RowLayoutOpt) *widget.Container {
	rl := widget.NewRowLayout(layout...)
	c := widget.NewContainer(append(opts, widget.ContainerOpts.Layout(rl))...)
	p.rows = append(p.rows, row{c: c, layout: rl})
	return c
}

func minSize(spec prefabs.ElementSpec) widget.WidgetOpt {
	w, h := spec.Width, spec.Height
	if w <= 0 {
		w = 120
	}
	if h <= 0 {
		h = 32
	}
	return widget.WidgetOpts.MinSize(w, h)
}

func (p *Page) clicked(el *Element) {
	if !el.HasClass("copy-btn") {
		return
	}
	src, err := CopySource(p.doc, el)
	if err != nil {
		p.log.Warnw("copy button has nothing to copy", "button", el.String(), "err", err)
		return
	}
	if !p.clip.Copy(src) {
		p.log.Infow("copy skipped; no clipboard", "button", el.String())
	}
}

// TargetAt returns the deepest element under (x, y), or nil outside the page.
func (p *Page) TargetAt(x, y int) *Element {
	if p == nil || p.root == nil {
		return nil
	}
	hw := p.root.WidgetAt(x, y)
	if hw == nil {
		return nil
	}
	for w := hw.GetWidget(); w != nil; w = w.Parent() {
		if el, ok := w.CustomData.(*Element); ok {
			return el
		}
	}
	return nil
}

// Layout places the page in a w x h viewport so TargetAt answers before
// the first Draw. UI.Draw repeats the same layout every frame.
func (p *Page) Layout(w, h int) {
	p.root.SetLocation(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if !p.root.IsValidated() {
		p.root.Validate()
	}
	for _, r := range p.rows {
		r.layout.Layout(r.c.Children(), r.c.GetWidget().Rect)
	}
}

func (p *Page) Title() string {
	return p.title
}

func (p *Page) Update() {
	p.UI.Update()
}

func (p *Page) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}

func (p *Page) String() string {
	return fmt.Sprintf("page %q (%s)", p.title, p.doc)
}
