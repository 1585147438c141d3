// Package core is a stand-in emulator used by the sample front-end. It
// draws a test pattern derived from the loaded file and keeps just enough
// state to exercise save states.
package core

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image/color"
	"io"
	"path"
	"strings"

	"github.com/automoto/emucommon/video"
)

// Native screen size.
const (
	Width  = 320
	Height = 240
)

const boxSize = 32

var stateMagic = [4]byte{'E', 'M', 'U', 'C'}

var ErrBadState = errors.New("core: not a save state")

var bars = []color.RGBA{
	{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xc0, A: 0xff},
	{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
}

// Pattern renders colour bars rotated by the checksum of the loaded file
// with a box bouncing across them.
type Pattern struct {
	Surface *video.Surface

	rom   string
	seed  uint32
	frame uint32
}

func New() *Pattern {
	p := &Pattern{Surface: video.NewSurface(Width, Height)}
	p.Surface.Black()
	return p
}

// Load starts rom from its contents.
func (p *Pattern) Load(rom string, data []byte) {
	p.rom = rom
	p.seed = crc32.ChecksumIEEE(data)
	p.frame = 0
	p.draw()
}

// ROM is the path of the loaded file, empty before Load.
func (p *Pattern) ROM() string   { return p.rom }
func (p *Pattern) Frame() uint32 { return p.frame }
func (p *Pattern) Loaded() bool  { return p.rom != "" }

// Reset restarts the loaded file.
func (p *Pattern) Reset() {
	p.frame = 0
	p.draw()
}

// Step runs one frame.
func (p *Pattern) Step() {
	if !p.Loaded() {
		return
	}
	p.frame++
	p.draw()
}

// BoxPos returns the top left corner of the bouncing box.
func (p *Pattern) BoxPos() (int, int) {
	return bounce(p.frame*2, Width-boxSize), bounce(p.frame, Height-boxSize)
}

func bounce(v uint32, span int) int {
	period := uint32(span * 2)
	v %= period
	if int(v) > span {
		return int(period - v)
	}
	return int(v)
}

func (p *Pattern) draw() {
	s := p.Surface
	barW := Width / len(bars)
	for i := range bars {
		c := bars[(i+int(p.seed%uint32(len(bars))))%len(bars)]
		s.FillRectangle(i*barW, 0, barW, Height, c)
	}
	x, y := p.BoxPos()
	s.FillRectangle(x+1, y+1, boxSize-2, boxSize-2, color.RGBA{A: 0xff})
	s.DrawRectangle(x, y, boxSize, boxSize, color.RGBA{R: 0xff, G: 0xff, B: 0xff}, true)
}

// SnapshotName maps a ROM path to its save state, next to the ROM under
// a "saves" directory, dropping any drive prefix.
func (p *Pattern) SnapshotName(rom string) string {
	if i := strings.IndexByte(rom, ':'); i >= 0 && !strings.Contains(rom[:i], "/") {
		rom = rom[i+1:]
	}
	base := path.Base(rom)
	base = strings.TrimSuffix(base, path.Ext(base))
	return path.Join("saves", base+".sav")
}

type state struct {
	Magic [4]byte
	Seed  uint32
	Frame uint32
}

func (p *Pattern) SaveState(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, state{Magic: stateMagic, Seed: p.seed, Frame: p.frame})
}

// LoadState restores a state written by SaveState. States saved for a
// different file are rejected.
func (p *Pattern) LoadState(r io.Reader) error {
	var st state
	if err := binary.Read(r, binary.LittleEndian, &st); err != nil {
		return fmt.Errorf("%w: %w", ErrBadState, err)
	}
	if st.Magic != stateMagic {
		return ErrBadState
	}
	if st.Seed != p.seed {
		return fmt.Errorf("%w: saved for another file", ErrBadState)
	}
	p.frame = st.Frame
	p.draw()
	return nil
}
