package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/automoto/emucommon/store"
	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed images/*.png
var imageFS embed.FS

// Embedded image names.
const (
	Logo  = "logo"
	Arrow = "arrow"
)

// Images caches decoded images by name. Images are owned by the cache
// until Free is called.
type Images struct {
	backend store.Backend
	cache   map[string]*ebiten.Image
}

// NewImages creates a cache. backend is used for names that are not
// embedded and may be nil.
func NewImages(backend store.Backend) *Images {
	return &Images{backend: backend, cache: make(map[string]*ebiten.Image)}
}

// Get returns the named image, loading it on first use. Embedded images
// are looked up first, then the backend.
func (im *Images) Get(name string) (*ebiten.Image, error) {
	if img, ok := im.cache[name]; ok {
		return img, nil
	}
	data, err := im.read(name)
	if err != nil {
		return nil, err
	}
	img, err := LoadImage(data)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", name, err)
	}
	im.cache[name] = img
	return img, nil
}

// MustGet is Get for embedded images, which always decode.
func (im *Images) MustGet(name string) *ebiten.Image {
	img, err := im.Get(name)
	if err != nil {
		panic(err)
	}
	return img
}

func (im *Images) read(name string) ([]byte, error) {
	if data, err := imageFS.ReadFile("images/" + name + ".png"); err == nil {
		return data, nil
	}
	if im.backend == nil {
		return nil, fmt.Errorf("image %s: %w", name, store.ErrNotFound)
	}
	return im.backend.Load(name)
}

// Free releases the named image.
func (im *Images) Free(name string) {
	if img, ok := im.cache[name]; ok {
		img.Deallocate()
		delete(im.cache, name)
	}
}

// FreeAll releases every cached image.
func (im *Images) FreeAll() {
	for name := range im.cache {
		im.Free(name)
	}
}

// DecodeImage decodes PNG data.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// LoadImage decodes PNG data into an ebiten image.
func LoadImage(data []byte) (*ebiten.Image, error) {
	img, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
