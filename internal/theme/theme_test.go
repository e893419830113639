package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader(`
# comment
Name: mine
paper: #FFEEDD
MessageBackground: #10203040
Unknown: #000000
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "mine" {
		t.Errorf("name %q", th.Name)
	}
	if th.Paper != (color.RGBA{0xFF, 0xEE, 0xDD, 0xFF}) {
		t.Errorf("paper %+v", th.Paper)
	}
	if th.MessageBackground != (color.RGBA{0x10, 0x20, 0x30, 0x40}) {
		t.Errorf("message background %+v", th.MessageBackground)
	}
	if th.CheckerDark != Default().CheckerDark {
		t.Errorf("unset field should keep default, got %+v", th.CheckerDark)
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Paper: #12345")); err == nil {
		t.Fatal("expected error for short hex")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#F94144", color.RGBA{0xF9, 0x41, 0x44, 0xFF}, true},
		{"#f9414480", color.RGBA{0xF9, 0x41, 0x44, 0x80}, true},
		{"Tomato", color.RGBA{0xFF, 0x63, 0x47, 0xFF}, true},
		{" red ", color.RGBA{0xFF, 0, 0, 0xFF}, true},
		{"F94144", color.RGBA{}, false},
		{"#GGGGGG", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ParseColor(%q) err = %v", c.in, err)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ParseColor(%q) = %+v want %+v", c.in, got, c.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAB, 0xCD, 0xEF, 0x12}} {
		got, err := ParseColor(Hex(c))
		if err != nil || got != c {
			t.Errorf("round trip %+v: got %+v, %v", c, got, err)
		}
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	src := Default()
	src.Paper = color.RGBA{9, 8, 7, 255}
	var sb strings.Builder
	for _, f := range src.Fields() {
		sb.WriteString(f.Key + ": " + f.Value + "\n")
	}
	got, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got.Name = src.Name
	if *got != *src {
		t.Errorf("got %+v want %+v", got, src)
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	names := Embedded()
	if len(names) < 2 {
		t.Fatalf("expected embedded themes, got %v", names)
	}
	l := &Loader{}
	for _, name := range names {
		th, err := l.Load(name)
		if err != nil {
			t.Errorf("Load(%q): %v", name, err)
			continue
		}
		if th.Name != name {
			t.Errorf("Load(%q) name %q", name, th.Name)
		}
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: mine\nPaper: #010203\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir}
	th, err := l.Load("mine")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Paper != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("paper %+v", th.Paper)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Error("expected error for missing theme")
	}
	th, err = l.Load(filepath.Join(dir, "mine.theme"))
	if err != nil || th.Name != "mine" {
		t.Errorf("load by path: %+v, %v", th, err)
	}
	th, err = l.Load("")
	if err != nil || th.Name != "Default" {
		t.Errorf("empty name: %+v, %v", th, err)
	}
}
