// Package colors resolves user color specifications (palette names, counts,
// cycle references, hex strings, and named colors) into the ordered cycle
// sequences the rc registry writes through to the plotting backend.
package colors

// Palettes maps cycle names to ordered hex colors. The colorblind, deep, and
// muted sets follow the seaborn qualitative palettes; default is the
// matplotlib C0..C9 cycle; tol is Paul Tol's colorblind-safe palette.
var Palettes = map[string][]string{
	"colorblind": {
		"#0173B2", "#DE8F05", "#029E73", "#D55E00", "#CC78BC",
		"#CA9161", "#FBAFE4", "#949494", "#ECE133", "#56B4E9",
	},
	"default": {
		"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
		"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
	},
	"deep": {
		"#4C72B0", "#DD8452", "#55A868", "#C44E52", "#8172B3",
		"#937860", "#DA8BC3", "#8C8C8C", "#CCB974", "#64B5CD",
	},
	"muted": {
		"#4878D0", "#EE854A", "#6ACC64", "#D65F5F", "#956CB4",
		"#8C613C", "#DC7EC0", "#797979", "#D5BB67", "#82C6E2",
	},
	"tol": {
		"#4477AA", "#EE6677", "#228833", "#CCBB44", "#66CCEE",
		"#AA3377", "#BBBBBB", "#EE8866", "#44BB99", "#FFAABB",
	},
}

// Palette returns a copy of the named palette.
func Palette(name string) ([]string, bool) {
	palette, ok := Palettes[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), palette...), true
}

// Cycled returns n colors drawn from palette, wrapping when n exceeds its
// length. An empty palette or non-positive n yields nil.
func Cycled(palette []string, n int) []string {
	if len(palette) == 0 || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = palette[i%len(palette)]
	}
	return out
}
