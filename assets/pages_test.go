package assets

import (
	"testing"
)

func TestPagesDecode(t *testing.T) {
	pages := Pages()
	if len(pages) < 2 {
		t.Fatalf("expected embedded pages, got %v", pages)
	}
	for _, name := range pages {
		outline, regions, err := Page(name)
		if err != nil {
			t.Fatalf("Page(%q): %v", name, err)
		}
		if outline.Bounds().Size() != regions.Bounds().Size() {
			t.Errorf("%s: outline %v regions %v", name, outline.Bounds(), regions.Bounds())
		}
	}
}

func TestPageUnknown(t *testing.T) {
	if _, _, err := Page("nope"); err == nil {
		t.Fatal("expected error")
	}
}
