package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

// Named faces used by the menu. Sizes are in pixels.
const (
	Title  FontName = "title"  // 18
	Menu   FontName = "menu"   // 14
	Footer FontName = "footer" // 13
	Small  FontName = "small"  // 12
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts  = map[FontName]font.Face{}
	sized  = map[int]font.Face{}
	parsed *truetype.Font
)

// LoadDefaults loads ttf (goregular when nil) and registers the named
// faces.
func LoadDefaults(ttf []byte) error {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	parsed = f
	clear(sized)

	LoadFontWithSize(Title, ttf, 18)
	LoadFontWithSize(Menu, ttf, 14)
	LoadFontWithSize(Footer, ttf, 13)
	LoadFontWithSize(Small, ttf, 12)
	return nil
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 14)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

// Sized returns a face of the default font at pixel size px. Faces are
// cached.
func Sized(px int) font.Face {
	if f, ok := sized[px]; ok {
		return f
	}
	if parsed == nil {
		panic("fonts: LoadDefaults not called")
	}
	f := truetype.NewFace(parsed, &truetype.Options{Size: float64(px)})
	sized[px] = f
	return f
}

// TextWidth is the advance width of s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
