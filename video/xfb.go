// Package video holds software drawing helpers: the packed YUV external
// frame buffer used by the console video hardware and an RGBA surface for
// emulators that render in software.
package video

// XFBWords is the number of 32-bit words in one frame buffer line. Each
// word holds two pixels.
const XFBWords = 320

// RGBToY1CbY2Cr packs an RGB colour into one frame buffer word covering
// two identical pixels.
func RGBToY1CbY2Cr(r, g, b uint8) uint32 {
	y := luma(int(r), int(g), int(b))
	cb := (-16874*int(r) - 33126*int(g) + 50000*int(b) + 12800000) / 100000
	cr := (50000*int(r) - 41869*int(g) - 8131*int(b) + 12800000) / 100000
	return uint32(y)<<24 | uint32(cb)<<16 | uint32(y)<<8 | uint32(cr)
}

func luma(r, g, b int) int {
	return (299*r + 587*g + 114*b) / 1000
}

// DrawLine fills line y of xfb from startX up to endX. Coordinates are in
// pixels; odd starts are rounded down to a word. Writes past the end of
// the buffer are dropped.
func DrawLine(xfb []uint32, startX, endX, y int, r, g, b uint8) {
	off := y*XFBWords + startX>>1
	c := RGBToY1CbY2Cr(r, g, b)
	for i := 0; i < (endX-startX)>>1; i++ {
		if off < 0 || off >= len(xfb) {
			return
		}
		xfb[off] = c
		off++
	}
}

// DrawImage copies an image already in frame buffer format to (x, y). src
// holds w/2 words per line.
func DrawImage(xfb, src []uint32, w, h, x, y int) {
	words := w >> 1
	x >>= 1
	pix := 0
	for row := 0; row < h; row++ {
		off := (y+row)*XFBWords + x
		for col := 0; col < words; col++ {
			if pix >= len(src) {
				return
			}
			if i := off + col; i >= 0 && i < len(xfb) {
				xfb[i] = src[pix]
			}
			pix++
		}
	}
}
