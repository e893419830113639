//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"
)

func TestWriteImageWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	initOnce = sync.Once{}
	initErr = nil

	err := WriteImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := encodePNG(image.NewNRGBA(image.Rect(0, 0, 3, 2)))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Fatalf("decoded %dx%d", cfg.Width, cfg.Height)
	}
}
