package assets

import (
	"testing"
)

func TestEmbeddedImagesDecode(t *testing.T) {
	for name, size := range map[string][2]int{Logo: {64, 16}, Arrow: {8, 9}} {
		data, err := imageFS.ReadFile("images/" + name + ".png")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		img, err := DecodeImage(data)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != size[0] || b.Dy() != size[1] {
			t.Errorf("%s is %dx%d, want %dx%d", name, b.Dx(), b.Dy(), size[0], size[1])
		}
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	if _, err := DecodeImage([]byte("not a png")); err == nil {
		t.Error("garbage decoded")
	}
}

func TestReadFallsBackToBackend(t *testing.T) {
	im := NewImages(nil)
	if _, err := im.read("missing"); err == nil {
		t.Error("missing image read without a backend")
	}
	if _, err := im.read(Logo); err != nil {
		t.Errorf("embedded image: %v", err)
	}
}
