//go:build ((linux || freebsd || openbsd || netbsd || dragonfly) && cgo) || windows || (darwin && cgo)

package clipboard

import (
	"image"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if initErr = checkDisplay(); initErr != nil {
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// WriteImage encodes the provided image as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
