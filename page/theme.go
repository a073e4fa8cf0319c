package page

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const defaultFontSize = 16

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

type theme struct {
	regular text.Face
	heading text.Face
	mono    text.Face

	background color.Color
	foreground color.Color
	muted      color.Color
	link       color.Color
	codeBG     color.Color

	button    *widget.ButtonImage
	buttonTxt *widget.ButtonTextColor
	input     *widget.TextInputImage
	inputTxt  *widget.TextInputColor
}

func newTheme(size float64, bg, fg color.Color) (*theme, error) {
	if size <= 0 {
		size = defaultFontSize
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("page: load regular font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("page: load mono font: %w", err)
	}
	if bg == nil {
		bg = color.RGBA{30, 30, 36, 255}
	}
	if fg == nil {
		fg = colornames.Whitesmoke
	}

	return &theme{
		regular:    &text.GoTextFace{Source: regular, Size: size},
		heading:    &text.GoTextFace{Source: regular, Size: size * 1.75},
		mono:       &text.GoTextFace{Source: mono, Size: size * 0.9},
		background: bg,
		foreground: fg,
		muted:      colornames.Darkgray,
		link:       colornames.Cornflowerblue,
		codeBG:     color.RGBA{18, 18, 22, 255},
		button: &widget.ButtonImage{
			Idle:    solidNineSlice(color.RGBA{70, 70, 84, 255}),
			Hover:   solidNineSlice(color.RGBA{90, 90, 108, 255}),
			Pressed: solidNineSlice(color.RGBA{56, 56, 66, 255}),
		},
		buttonTxt: &widget.ButtonTextColor{
			Idle: fg,
		},
		input: &widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		},
		inputTxt: &widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		},
	}, nil
}

// face picks the font for an element's tag.
func (t *theme) face(el *Element) *text.Face {
	switch el.Tag {
	case "h1", "h2":
		return &t.heading
	case "code", "pre":
		return &t.mono
	default:
		return &t.regular
	}
}

func (t *theme) textColor(el *Element) color.Color {
	switch {
	case el.Tag == "a":
		return t.link
	case el.HasClass("muted"):
		return t.muted
	default:
		return t.foreground
	}
}
