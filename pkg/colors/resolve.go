package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrBadColorSpec indicates a specification no resolution rule recognises.
var ErrBadColorSpec = errors.New("colors: invalid color specification")

// Single-letter shorthands commonly used by plotting code.
var shorthands = map[string]string{
	"b": "blue",
	"c": "cyan",
	"g": "green",
	"k": "black",
	"m": "magenta",
	"r": "red",
	"w": "white",
	"y": "yellow",
}

// Resolver turns color specifications into ordered cycle sequences. CN
// references ("C0", "C1", …) resolve against the base palette fixed at
// construction.
type Resolver struct {
	base []string
}

// NewResolver builds a resolver over base; an empty base falls back to the
// colorblind palette.
func NewResolver(base []string) *Resolver {
	if len(base) == 0 {
		base = Palettes["colorblind"]
	}
	return &Resolver{base: append([]string(nil), base...)}
}

// Base returns a copy of the reference palette.
func (r *Resolver) Base() []string {
	return append([]string(nil), r.base...)
}

// Cycle resolves specs into an ordered color sequence. Accepted forms:
//
//	Cycle("colorblind")       full named palette
//	Cycle("colorblind", 3)    first 3 entries, wrapping past the end
//	Cycle(5)                  5 colors drawn from the base palette
//	Cycle("C1", "#AABBCC", "crimson", "k")
//
// Every element of a list form must be a string spec: a CN reference, a hex
// string, a named color, or a single-letter shorthand.
func (r *Resolver) Cycle(specs ...any) ([]string, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: empty specification", ErrBadColorSpec)
	}

	if len(specs) == 1 {
		switch v := specs[0].(type) {
		case string:
			if palette, ok := Palette(v); ok {
				return palette, nil
			}
			resolved, err := r.resolveOne(v)
			if err != nil {
				return nil, err
			}
			return []string{resolved}, nil
		default:
			if n, ok := asCount(v); ok {
				return Cycled(r.base, n), nil
			}
			return nil, fmt.Errorf("%w: %v (%T)", ErrBadColorSpec, v, v)
		}
	}

	if len(specs) == 2 {
		if name, ok := specs[0].(string); ok {
			if n, ok := asCount(specs[1]); ok {
				palette, ok := Palette(name)
				if !ok {
					return nil, fmt.Errorf("%w: unknown palette %q", ErrBadColorSpec, name)
				}
				return Cycled(palette, n), nil
			}
		}
	}

	out := make([]string, 0, len(specs))
	for _, spec := range specs {
		name, ok := spec.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T)", ErrBadColorSpec, spec, spec)
		}
		resolved, err := r.resolveOne(name)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

func (r *Resolver) resolveOne(spec string) (string, error) {
	if index, ok := cycleRef(spec); ok {
		return r.base[index%len(r.base)], nil
	}
	if strings.HasPrefix(spec, "#") {
		parsed, ok := ParseHex(spec)
		if !ok {
			return "", fmt.Errorf("%w: malformed hex %q", ErrBadColorSpec, spec)
		}
		return HexString(parsed), nil
	}
	name := strings.ToLower(spec)
	if full, ok := shorthands[name]; ok {
		name = full
	}
	if c, ok := colornames.Map[name]; ok {
		return HexString(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}), nil
	}
	return "", fmt.Errorf("%w: unknown color %q", ErrBadColorSpec, spec)
}

// cycleRef recognises "C<index>" palette references.
func cycleRef(spec string) (int, bool) {
	if len(spec) < 2 || spec[0] != 'C' {
		return 0, false
	}
	index, err := strconv.Atoi(spec[1:])
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

func asCount(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
