package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/colorbook/internal/raster"
	"github.com/example/colorbook/internal/region"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/pages

[fill]
min_alpha = 180
tolerance = 10
radius = 3
wall_alpha_min = 16
wall_luma_max = 40

[palette]
sky = #87CEEB
grass = green

[notify]
save = true
copy = false

[theme.my_custom_theme]
Background = #111111
Paper: #FFFFF0
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/pages" {
		t.Errorf("Expected save_dir '/tmp/pages', got '%s'", cfg.SaveDir)
	}
	wantFill := Fill{MinAlpha: 180, Tolerance: 10, Radius: 3, WallAlphaMin: 16, WallLumaMax: 40}
	if cfg.Fill != wantFill {
		t.Errorf("fill %+v want %+v", cfg.Fill, wantFill)
	}
	if got := cfg.Fill.Sampler(); got != (region.Sampler{MinAlpha: 180, Tolerance: 10, Radius: 3}) {
		t.Errorf("sampler %+v", got)
	}
	if got := cfg.Fill.WallRule(); got != (raster.WallRule{AlphaMin: 16, LumaMax: 40}) {
		t.Errorf("wall rule %+v", got)
	}

	if len(cfg.Palette) != 2 {
		t.Fatalf("configured palette should replace the default, got %+v", cfg.Palette)
	}
	if s, ok := cfg.Swatch("SKY"); !ok || s.Color != (color.RGBA{0x87, 0xCE, 0xEB, 0xFF}) {
		t.Errorf("sky swatch %+v %v", s, ok)
	}
	if s, ok := cfg.Swatch("grass"); !ok || s.Color != (color.RGBA{0, 0x80, 0, 0xFF}) {
		t.Errorf("grass swatch %+v %v", s, ok)
	}

	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background != (color.RGBA{0x11, 0x11, 0x11, 0xFF}) {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	if th.Paper != (color.RGBA{0xFF, 0xFF, 0xF0, 0xFF}) {
		t.Errorf("Unexpected Paper color: %+v", th.Paper)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fill.Sampler() != region.DefaultSampler() {
		t.Errorf("sampler %+v", cfg.Fill.Sampler())
	}
	if cfg.Fill.WallRule() != raster.DefaultWallRule() {
		t.Errorf("wall rule %+v", cfg.Fill.WallRule())
	}
	if len(cfg.Palette) != 6 || cfg.Palette[0].Color != (color.RGBA{0xF9, 0x41, 0x44, 0xFF}) {
		t.Errorf("palette %+v", cfg.Palette)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad int":       "[fill]\nradius = two\n",
		"negative":      "[fill]\ntolerance = -1\n",
		"alpha too big": "[fill]\nmin_alpha = 256\n",
		"bad swatch":    "[palette]\nsky = nope\n",
		"bad bool":      "[notify]\nsave = maybe\n",
		"bad theme":     "[theme.x]\nPaper = #12\n",
	}
	for name, input := range cases {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/pages

[fill]
tolerance = 4

[palette]
sun = #FFD700
sea = #006994

[notify]
save = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Fill != cfg2.Fill {
		t.Errorf("Fill mismatch: %+v vs %+v", cfg.Fill, cfg2.Fill)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if len(cfg.Palette) != len(cfg2.Palette) {
		t.Fatalf("Palette mismatch: %+v vs %+v", cfg.Palette, cfg2.Palette)
	}
	for i := range cfg.Palette {
		if cfg.Palette[i] != cfg2.Palette[i] {
			t.Errorf("swatch %d: %+v vs %+v", i, cfg.Palette[i], cfg2.Palette[i])
		}
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	l := NewLoader("release", "")
	if p := l.Path(); p != "" {
		t.Fatalf("expected no config, got %q", p)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Theme = "dark"
	path, err := l.Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "xdg", "colorbook", "config.rc"); path != want {
		t.Errorf("saved to %q want %q", path, want)
	}
	loaded, err := l.Load()
	if err != nil || loaded.Theme != "dark" {
		t.Fatalf("reload: %+v, %v", loaded, err)
	}

	override := filepath.Join(dir, "override.rc")
	if err := os.WriteFile(override, []byte("theme = crayon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l = NewLoader("release", override)
	if p := l.Path(); p != override {
		t.Errorf("override path %q", p)
	}
	loaded, err = l.Load()
	if err != nil || loaded.Theme != "crayon" {
		t.Fatalf("override load: %+v, %v", loaded, err)
	}
}
