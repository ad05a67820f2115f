package rc

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-plotrc/pkg/store"
)

func TestStyleFromJSONFlattens(t *testing.T) {
	payload := []byte(`{
		"axes.grid": true,
		"image": {"aspect": "equal", "cmap": "grays"},
		"figure": {"dpi": 150}
	}`)

	table, err := StyleFromJSON("custom", payload)
	if err != nil {
		t.Fatalf("StyleFromJSON: %v", err)
	}

	if table["axes.grid"] != true {
		t.Fatalf("axes.grid = %v", table["axes.grid"])
	}
	if table["image.aspect"] != "equal" {
		t.Fatalf("image.aspect = %v", table["image.aspect"])
	}
	if got, ok := table["figure.dpi"].(float64); !ok || got != 150.0 {
		t.Fatalf("figure.dpi = %v (%T)", table["figure.dpi"], table["figure.dpi"])
	}
	if _, ok := table["image"]; ok {
		t.Fatal("nested object survived flattening")
	}
}

func TestStyleFromJSONRejectsMalformed(t *testing.T) {
	if _, err := StyleFromJSON("broken", []byte(`{`)); err == nil {
		t.Fatal("malformed payload should fail")
	}
}

func TestLoadStyleIntoRegistry(t *testing.T) {
	style, err := LoadStyle(filepath.Join("testdata", "mono_style.json"))
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}

	backing := store.NewMemoryStore(BaselineParams())
	backing.RegisterStyle("mono_style", style)

	registry := newTestRegistry(t, WithStore(backing), WithStyle("mono_style"))

	value, err := registry.Get("image.aspect")
	if err != nil {
		t.Fatalf("Get(image.aspect): %v", err)
	}
	if value != "equal" {
		t.Fatalf("image.aspect = %v, want equal", value)
	}
	value, err = registry.Get("image.origin")
	if err != nil {
		t.Fatalf("Get(image.origin): %v", err)
	}
	if value != "lower" {
		t.Fatalf("image.origin = %v, want lower", value)
	}

	// Library defaults are written after the style overlay, so keys they own
	// come back to their default values.
	if got := getFloat(t, registry, "figure.dpi"); got != 90.0 {
		t.Fatalf("figure.dpi = %v, want 90.0", got)
	}
	if got := getFloat(t, registry, "lines.linewidth"); got != 1.3 {
		t.Fatalf("lines.linewidth = %v, want 1.3", got)
	}
}

func TestLoadStyleMissingFile(t *testing.T) {
	if _, err := LoadStyle(filepath.Join("testdata", "does_not_exist.json")); err == nil {
		t.Fatal("missing file should fail")
	}
}
