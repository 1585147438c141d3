// Package gfx draws menu primitives in console coordinates: the origin is
// the centre of the screen and y grows upwards.
package gfx

import (
	"image/color"
	"math"

	"github.com/automoto/emucommon/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style selects how DrawText places text around its point. Combine one
// justify and one align flag.
type Style uint16

const (
	JustifyLeft   Style = 0x0001
	JustifyCenter Style = 0x0002
	JustifyRight  Style = 0x0004
	justifyMask   Style = 0x000f

	AlignTop      Style = 0x0010
	AlignMiddle   Style = 0x0020
	AlignBottom   Style = 0x0040
	AlignBaseline Style = 0x0080
	alignMask     Style = 0x00f0
)

// X converts a screen x into console coordinates for a w wide screen.
func X(x, w int) int { return x - w/2 }

// Y converts a screen y into console coordinates for an h high screen.
func Y(y, h int) int { return h/2 - y }

// ToScreen converts console coordinates to screen pixels.
func ToScreen(screen *ebiten.Image, x, y int) (float32, float32) {
	b := screen.Bounds()
	return float32(x + b.Dx()/2), float32(b.Dy()/2 - y)
}

// DrawRectangle draws a rectangle whose top left corner is (x, y). Outlines
// are one pixel wide and lie inside the rectangle.
func DrawRectangle(screen *ebiten.Image, x, y, w, h int, c color.Color, filled bool) {
	sx, sy := ToScreen(screen, x, y)
	if filled {
		vector.FillRect(screen, sx, sy, float32(w), float32(h), c, false)
		return
	}
	vector.StrokeRect(screen, sx+0.5, sy+0.5, float32(w-1), float32(h-1), 1, c, false)
}

// DrawText draws s with the default font at pixel size px.
func DrawText(screen *ebiten.Image, x, y, px int, s string, c color.Color, style Style) {
	face := fonts.Sized(px)
	sx, sy := ToScreen(screen, x, y)
	tx, ty := int(sx), int(sy)

	switch style & justifyMask {
	case JustifyCenter:
		tx -= fonts.TextWidth(face, s) / 2
	case JustifyRight:
		tx -= fonts.TextWidth(face, s)
	}

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	switch style & alignMask {
	case AlignTop:
		ty += ascent
	case AlignMiddle:
		ty += (ascent - descent) / 2
	case AlignBottom:
		ty -= descent
	}

	text.Draw(screen, s, face, tx, ty, c)
}

// TextWidth is the width of s at pixel size px.
func TextWidth(px int, s string) int {
	return fonts.TextWidth(fonts.Sized(px), s)
}

// ImageOptions transform an image drawn with DrawImage. Rotation and scale
// are applied around the screen centre.
type ImageOptions struct {
	Degrees        float64
	ScaleX, ScaleY float64
	Alpha          uint8
}

// DrawImage draws img stretched to w by h with its top left corner at
// (x, y). A nil opts draws it untransformed and opaque.
func DrawImage(screen, img *ebiten.Image, x, y, w, h int, opts *ImageOptions) {
	if img == nil {
		return
	}
	o := ImageOptions{ScaleX: 1, ScaleY: 1, Alpha: 0xff}
	if opts != nil {
		o = *opts
	}

	ib := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(ib.Dx()), float64(h)/float64(ib.Dy()))
	op.GeoM.Translate(float64(x), float64(-y))
	op.GeoM.Scale(o.ScaleX, o.ScaleY)
	op.GeoM.Rotate(-o.Degrees * math.Pi / 180)
	sb := screen.Bounds()
	op.GeoM.Translate(float64(sb.Dx()/2), float64(sb.Dy()/2))
	op.ColorScale.ScaleAlpha(float32(o.Alpha) / 0xff)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
