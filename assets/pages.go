// Package assets bundles sample coloring pages with the binary.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Each page is a pair of PNGs: NAME_outline.png and NAME_regions.png.
//
//go:embed pages/*.png
var embeddedPages embed.FS

const (
	outlineSuffix = "_outline.png"
	regionsSuffix = "_regions.png"
)

var (
	listOnce sync.Once
	names    []string
)

// Pages lists the names of the embedded pages in sorted order.
func Pages() []string {
	listOnce.Do(func() {
		entries, err := fs.ReadDir(embeddedPages, "pages")
		if err != nil {
			return
		}
		for _, e := range entries {
			if base, ok := strings.CutSuffix(e.Name(), outlineSuffix); ok {
				names = append(names, base)
			}
		}
		sort.Strings(names)
	})
	return append([]string(nil), names...)
}

// Page decodes the outline and region-id images of the named page.
func Page(name string) (outline, regions image.Image, err error) {
	outline, err = decode(name + outlineSuffix)
	if err != nil {
		return nil, nil, fmt.Errorf("page %q: %w", name, err)
	}
	regions, err = decode(name + regionsSuffix)
	if err != nil {
		return nil, nil, fmt.Errorf("page %q: %w", name, err)
	}
	return outline, regions, nil
}

func decode(file string) (image.Image, error) {
	data, err := embeddedPages.ReadFile(path.Join("pages", file))
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(data))
}
