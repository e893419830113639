package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/example/colorbook/assets"
	"github.com/example/colorbook/internal/raster"
)

// pageFlags selects the outline and region-id pair a command works on:
// either two files or a bundled page.
type pageFlags struct {
	outline string
	regions string
	page    string
}

func (p *pageFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.outline, "outline", "", "outline image file")
	fs.StringVar(&p.regions, "regions", "", "region-id image file, same size as the outline")
	fs.StringVar(&p.page, "page", "", "bundled page to use when no files are given")
}

// name is used to derive default output file names.
func (p *pageFlags) name() string {
	if p.outline != "" {
		return trimExt(p.outline)
	}
	if p.page != "" {
		return p.page
	}
	if pages := assets.Pages(); len(pages) > 0 {
		return pages[0]
	}
	return "page"
}

func (p *pageFlags) validate() error {
	if (p.outline == "") != (p.regions == "") {
		return errors.New("-outline and -regions must be given together")
	}
	if p.outline != "" && p.page != "" {
		return errors.New("-page cannot be used with -outline and -regions")
	}
	return nil
}

// load decodes the selected pair.
func (p *pageFlags) load() (outline, regions *raster.Buffer, err error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	if p.outline != "" {
		outline, err = openRaster(p.outline)
		if err != nil {
			return nil, nil, err
		}
		regions, err = openRaster(p.regions)
		if err != nil {
			return nil, nil, err
		}
		return outline, regions, nil
	}
	return loadPage(p.name())
}

func loadPage(name string) (outline, regions *raster.Buffer, err error) {
	o, r, err := assets.Page(name)
	if err != nil {
		return nil, nil, err
	}
	if outline, err = raster.FromImage(o); err != nil {
		return nil, nil, fmt.Errorf("page %q outline: %w", name, err)
	}
	if regions, err = raster.FromImage(r); err != nil {
		return nil, nil, fmt.Errorf("page %q regions: %w", name, err)
	}
	return outline, regions, nil
}

func openRaster(path string) (*raster.Buffer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	b, err := raster.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return b, nil
}

func trimExt(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSuffix(base, "_outline")
}

// defaultOutput places NAME-colored.png in the configured save directory.
func (r *root) defaultOutput(name string) string {
	file := name + "-colored.png"
	if dir := r.cfg().SaveDir; dir != "" {
		return filepath.Join(dir, file)
	}
	return file
}
