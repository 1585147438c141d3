package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// DeflickerShader softens interlace flicker on the emulator screen
	DeflickerShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/deflicker.kage")
	if err != nil {
		return err
	}
	DeflickerShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}
	return nil
}
