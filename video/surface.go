package video

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Surface is an RGBA frame an emulator renders into.
type Surface struct {
	*image.RGBA
}

func NewSurface(w, h int) *Surface {
	return &Surface{RGBA: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// clip limits the rectangle to the surface. ok is false when nothing is
// left.
func (s *Surface) clip(x, y, w, h int) (int, int, int, int, bool) {
	b := s.Bounds()
	if x < b.Min.X {
		w -= b.Min.X - x
		x = b.Min.X
	}
	if y < b.Min.Y {
		h -= b.Min.Y - y
		y = b.Min.Y
	}
	if x+w > b.Max.X {
		w = b.Max.X - x
	}
	if y+h > b.Max.Y {
		h = b.Max.Y - y
	}
	return x, y, w, h, w > 0 && h > 0
}

func (s *Surface) plot(x, y int, c color.RGBA, xor bool) {
	if !xor {
		s.SetRGBA(x, y, c)
		return
	}
	// alpha is left alone so the result stays visible
	p := s.RGBAAt(x, y)
	p.R ^= c.R
	p.G ^= c.G
	p.B ^= c.B
	s.SetRGBA(x, y, p)
}

// DrawRectangle draws a one pixel outline, clipped to the surface. With
// xor the outline is combined with the existing pixels, so drawing it
// twice restores them.
func (s *Surface) DrawRectangle(x, y, w, h int, c color.RGBA, xor bool) {
	x, y, w, h, ok := s.clip(x, y, w, h)
	if !ok {
		return
	}
	for xo := x + 1; xo < x+w-1; xo++ {
		s.plot(xo, y, c, xor)
		if h > 1 {
			s.plot(xo, y+h-1, c, xor)
		}
	}
	for yo := y; yo < y+h; yo++ {
		s.plot(x, yo, c, xor)
		if w > 1 {
			s.plot(x+w-1, yo, c, xor)
		}
	}
}

// FillRectangle fills a rectangle, clipped to the surface.
func (s *Surface) FillRectangle(x, y, w, h int, c color.RGBA) {
	x, y, w, h, ok := s.clip(x, y, w, h)
	if !ok {
		return
	}
	draw.Draw(s.RGBA, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

// Black clears the surface to opaque black.
func (s *Surface) Black() {
	draw.Draw(s.RGBA, s.Bounds(), image.NewUniform(color.RGBA{A: 0xff}), image.Point{}, draw.Src)
}

// DrawBorder outlines rows startY to startY+height in white with a black
// inner line. It marks the area being resized.
func (s *Surface) DrawBorder(startY, height int) {
	w := s.Bounds().Dx()
	s.DrawRectangle(0, startY, w, height, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false)
	s.DrawRectangle(1, startY+1, w-2, height-2, color.RGBA{A: 0xff}, false)
}

// PutImage copies the surface into dst enlarged by an integer scale and
// centred.
func (s *Surface) PutImage(dst *image.RGBA, scale int) {
	if scale < 1 {
		scale = 1
	}
	sb := s.Bounds()
	w, h := sb.Dx()*scale, sb.Dy()*scale
	db := dst.Bounds()
	x := db.Min.X + (db.Dx()-w)/2
	y := db.Min.Y + (db.Dy()-h)/2
	draw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+w, y+h), s.RGBA, sb, draw.Src, nil)
}

// ScaleTo draws the surface stretched over r. filter selects bilinear
// filtering instead of nearest neighbour.
func (s *Surface) ScaleTo(dst draw.Image, r image.Rectangle, filter bool) {
	var sc draw.Scaler = draw.NearestNeighbor
	if filter {
		sc = draw.ApproxBiLinear
	}
	sc.Scale(dst, r, s.RGBA, s.Bounds(), draw.Src, nil)
}
