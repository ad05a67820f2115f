package rc

// Globals lists the user-facing linked properties and their startup values.
// Each property fans out to the concrete parameters named in Children; the
// tickratio and minorwidth entries feed the derived-parameter rules instead.
var Globals = map[string]any{
	"color":     "k",
	"facecolor": "w",
	"small":     8.0,
	"large":     9.0,
	"linewidth": 0.6,
	"bottom":    true,
	"top":       false,
	"left":      true,
	"right":     false,
	"ticklen":   4.0,
	"tickpad":   2.0,
	"inout":     "out",
	"fontname":  "DejaVu Sans",
	// ratios consumed by the derived rules
	"tickratio":  0.5,
	"minorwidth": 0.8,
}

// Children maps each global property to the concrete parameters it controls.
// Writes fan out in slice order. The reverse direction doubles as the alias
// table: setting any listed key redirects to the owning global.
var Children = map[string][]string{
	"color":     {"axes.labelcolor", "axes.edgecolor", "xtick.color", "ytick.color"},
	"facecolor": {"axes.facecolor"},
	"small":     {"font.size", "xtick.labelsize", "ytick.labelsize", "axes.labelsize", "legend.fontsize"},
	"large":     {"abc.fontsize", "figure.titlesize", "axes.titlesize"},
	"linewidth": {"axes.linewidth", "grid.linewidth", "xtick.major.width", "ytick.major.width"},
	"fontname":  {"font.sans-serif"},
	"bottom":    {"xtick.major.bottom", "xtick.minor.bottom"},
	"top":       {"xtick.major.top", "xtick.minor.top"},
	"left":      {"ytick.major.left", "ytick.minor.left"},
	"right":     {"ytick.major.right", "ytick.minor.right"},
	"ticklen":   {"xtick.major.size", "ytick.major.size"},
	"inout":     {"xtick.direction", "ytick.direction"},
	"tickpad":   {"xtick.major.pad", "xtick.minor.pad", "ytick.major.pad", "ytick.minor.pad"},
}

// PlainDefaults are one-shot parameters the external store already
// understands, written through verbatim at construction.
var PlainDefaults = map[string]any{
	"figure.dpi":              90.0,
	"figure.facecolor":        []float64{0.95, 0.95, 0.95, 1},
	"figure.max_open_warning": 0.0,
	"figure.autolayout":       false,
	"figure.titleweight":      "bold",
	"savefig.facecolor":       []float64{1, 1, 1, 1},
	"savefig.transparent":     true,
	"savefig.dpi":             300.0,
	"savefig.pad_inches":      0.0,
	"savefig.directory":       "",
	"savefig.bbox":            "standard",
	"savefig.format":          "pdf",
	"axes.facecolor":          []float64{1, 1, 1, 1},
	"axes.xmargin":            0.0,
	"axes.ymargin":            0.05,
	"axes.titleweight":        "normal",
	"axes.labelweight":        "normal",
	"axes.grid":               true,
	"axes.labelpad":           3.0,
	"axes.titlepad":           3.0,
	"axes.axisbelow":          false,
	"xtick.minor.visible":     true,
	"ytick.minor.visible":     true,
	"grid.color":              "k",
	"grid.alpha":              0.1,
	"grid.linestyle":          "-",
	"grid.linewidth":          0.6,
	"font.family":             "sans-serif",
	"font.sans-serif":         "DejaVu Sans",
	"mathtext.default":        "regular",
	"mathtext.bf":             "sans:bold",
	"mathtext.it":             "sans:it",
	"text.latex.preamble":     `\usepackage{cmbright}`,
	"image.cmap":              "sunset",
	"image.lut":               256.0,
	"patch.facecolor":         "C0",
	"patch.edgecolor":         "k",
	"patch.linewidth":         1.0,
	"hatch.color":             "k",
	"hatch.linewidth":         1.0,
	"markers.fillstyle":       "full",
	"scatter.marker":          "o",
	"lines.linewidth":         1.3,
	"lines.color":             "C0",
	"lines.markeredgewidth":   0.0,
	"lines.markersize":        3.0,
	"lines.dash_joinstyle":    "miter",
	"lines.dash_capstyle":     "projecting",
	"lines.solid_joinstyle":   "miter",
	"lines.solid_capstyle":    "projecting",
	"legend.fancybox":         false,
	"legend.frameon":          false,
	"legend.labelspacing":     0.5,
	"legend.handletextpad":    0.5,
	"legend.handlelength":     1.5,
	"legend.columnspacing":    1.0,
	"legend.facecolor":        "w",
	"legend.numpoints":        1.0,
	"legend.borderpad":        0.5,
	"legend.borderaxespad":    0.0,
}

// SpecialDefaults seeds the secondary store with parameters the external
// library does not recognise. The abc.fontsize and gridminor.linewidth
// entries only need to exist; the globals pass at construction overwrites
// them through the normal propagation path.
var SpecialDefaults = map[string]any{
	"abc.fontsize":          9.0,
	"gridminor.linewidth":   0.48,
	"axes.facehatch":        nil,
	"abc.weight":            "bold",
	"gridminor.color":       "k",
	"gridminor.alpha":       0.1,
	"gridminor.linestyle":   "-",
	"land.linewidth":        0.0,
	"land.color":            "k",
	"ocean.linewidth":       0.0,
	"ocean.color":           "w",
	"coastline.linewidth":   1.0,
	"lonlatlines.linewidth": 1.0,
	"lonlatlines.linestyle": "--",
	"lonlatlines.alpha":     0.4,
	"lonlatlines.color":     "k",
	"subplots.title":        0.1,
	"subplots.inner":        0.2,
	"subplots.legend":       0.25,
	"subplots.cbar":         0.17,
	"subplots.ylab":         0.7,
	"subplots.xlab":         0.55,
	"subplots.nolab":        0.15,
}

// DefaultRules carries the derived-parameter rules: minor-tick sizing follows
// the major tick length scaled by tickratio, and minor tick/grid widths
// follow the base linewidth scaled by minorwidth.
var DefaultRules = []Rule{
	{
		Expr:    "ticklen * tickratio",
		Inputs:  []string{"ticklen", "tickratio"},
		Targets: []string{"xtick.minor.size", "ytick.minor.size"},
	},
	{
		Expr:    "linewidth * minorwidth",
		Inputs:  []string{"linewidth", "minorwidth"},
		Targets: []string{"xtick.minor.width", "ytick.minor.width", "gridminor.linewidth"},
	},
}

// derivedTargets lists the rule targets owned by the external store; they
// must exist in the baseline so derived writes resolve there.
var derivedTargets = []string{
	"xtick.minor.size",
	"ytick.minor.size",
	"xtick.minor.width",
	"ytick.minor.width",
}

// BaselineParams builds the library-default external parameter table: every
// plain default, every alias child not owned by the special store, the
// derived minor-tick targets, and the color-cycle parameter. Values for keys
// outside PlainDefaults start nil and are filled by the construction pass.
func BaselineParams() map[string]any {
	params := copyTable(PlainDefaults)
	for _, children := range Children {
		for _, key := range children {
			if _, ok := SpecialDefaults[key]; ok {
				continue
			}
			if _, ok := params[key]; !ok {
				params[key] = nil
			}
		}
	}
	for _, key := range derivedTargets {
		if _, ok := params[key]; !ok {
			params[key] = nil
		}
	}
	params[propCycleKey] = nil
	return params
}

func copyTable(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
