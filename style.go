package rc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-plotrc/internal/styledec"
)

// StyleFromJSON parses a JSON style sheet into a flat parameter table
// suitable for store.MemoryStore.RegisterStyle. Nested objects flatten into
// dotted keys, so both {"axes.grid": true} and {"axes": {"grid": true}}
// forms are accepted.
func StyleFromJSON(name string, payload []byte) (map[string]any, error) {
	table, err := styledec.Decode(styledec.Context{Name: name}, payload)
	if err != nil {
		return nil, err
	}
	flat := make(map[string]any, len(table))
	flattenStyle("", table, flat)
	return flat, nil
}

// LoadStyle reads a JSON style sheet from disk; the file's base name (minus
// extension) becomes the style name used in error messages.
func LoadStyle(path string) (map[string]any, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return StyleFromJSON(name, payload)
}

func flattenStyle(prefix string, table map[string]any, out map[string]any) {
	for key, value := range table {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenStyle(name, nested, out)
			continue
		}
		out[name] = value
	}
}
