// Package clipboard publishes finished pictures to the system clipboard as
// PNG data.
package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"runtime"
)

var (
	// ErrNoDisplay is returned on X11/Wayland systems without a display.
	ErrNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	// ErrUnsupported is returned on platforms without a clipboard backend.
	ErrUnsupported = errors.New("clipboard image operations are not supported on this platform")
)

func checkDisplay() error {
	switch runtime.GOOS {
	case "windows", "darwin":
		return nil
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return ErrNoDisplay
	}
	return nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
