package plot

import (
	"math"

	"github.com/ansel1/merry"
	deepcopy "github.com/barkimedes/go-deepcopy"
)

// Params is the fully resolved settings record for one render. Immutable
// once resolved.
type Params struct {
	Font     string
	FontSize float64
	Width    float64
	Height   float64

	XLabel string
	YLabel string
	Grid   bool

	// Extent seeds. They initialize the running min/max of the data scan
	// and are never narrowed by it.
	XMin float64
	XMax float64
	YMin float64
	YMax float64

	PointSize float64

	XDecimalPlaces int
	YDecimalPlaces int

	GraphAxisMarksInterval  int
	GraphAxisMarksThickness float64
	GraphFrameThickness     float64
	GraphFrameSetback       float64

	BiggerMarks  bool
	SmallerMarks bool

	BgColor string
	FgColor string

	// ColorList replaces the random fallback color source with a fixed
	// cycle when non-empty. Only templates usually set it.
	ColorList []string
}

var DefaultParams = Params{
	Font:     "SourceSansPro-Regular",
	FontSize: 16,
	Width:    700,
	Height:   560,

	XLabel: "x axis",
	YLabel: "y axis",
	Grid:   false,

	XMin: 0,
	XMax: 0,
	YMin: 0,
	YMax: 0,

	PointSize: 2,

	XDecimalPlaces: 0,
	YDecimalPlaces: 0,

	GraphAxisMarksInterval:  6,
	GraphAxisMarksThickness: 2,
	GraphFrameThickness:     2,
	GraphFrameSetback:       4,

	BiggerMarks:  true,
	SmallerMarks: false,

	BgColor: "white",
	FgColor: "black",
}

// ResolveParams merges a partial settings mapping over defaults. Keys that
// are absent or carry a falsy value (null, 0, "", false) fall back to the
// default individually; a present truthy value is kept only when its type
// matches the default's type, otherwise ErrInvalidSettings is returned.
// Unrecognized keys are ignored.
func ResolveParams(settings map[string]interface{}, defaults Params) (Params, error) {
	r := resolver{settings: settings}

	p := Params{
		Font:     r.getString("font", defaults.Font),
		FontSize: r.getFloat64("fontSize", defaults.FontSize),
		Width:    r.getFloat64("width", defaults.Width),
		Height:   r.getFloat64("height", defaults.Height),

		XLabel: r.getString("xLabel", defaults.XLabel),
		YLabel: r.getString("yLabel", defaults.YLabel),
		Grid:   r.getBool("grid", defaults.Grid),

		XMin: r.getFloat64("xMin", defaults.XMin),
		XMax: r.getFloat64("xMax", defaults.XMax),
		YMin: r.getFloat64("yMin", defaults.YMin),
		YMax: r.getFloat64("yMax", defaults.YMax),

		PointSize: r.getFloat64("pointSize", defaults.PointSize),

		XDecimalPlaces: r.getInt("xDecimalPlaces", defaults.XDecimalPlaces),
		YDecimalPlaces: r.getInt("yDecimalPlaces", defaults.YDecimalPlaces),

		GraphAxisMarksInterval:  r.getInt("graphAxisMarksInterval", defaults.GraphAxisMarksInterval),
		GraphAxisMarksThickness: r.getFloat64("graphAxisMarksThickness", defaults.GraphAxisMarksThickness),
		GraphFrameThickness:     r.getFloat64("graphFrameThickness", defaults.GraphFrameThickness),
		GraphFrameSetback:       r.getFloat64("graphFrameSetback", defaults.GraphFrameSetback),

		BiggerMarks:  r.getBool("biggerMarks", defaults.BiggerMarks),
		SmallerMarks: r.getBool("smallerMarks", defaults.SmallerMarks),

		BgColor: r.getString("bgColor", defaults.BgColor),
		FgColor: r.getString("fgColor", defaults.FgColor),

		ColorList: r.getStringArray("colorList", defaults.ColorList),
	}

	if r.err != nil {
		return defaults, r.err
	}
	return p, nil
}

type resolver struct {
	settings map[string]interface{}
	err      error
}

// falsy mirrors the loose emptiness rule of the settings surface: an
// explicit zero value is not distinguished from an omitted key.
func falsy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0 || math.IsNaN(v)
	case float32:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case []interface{}:
		return len(v) == 0
	case []string:
		return len(v) == 0
	}
	return false
}

func (r *resolver) lookup(key string) (interface{}, bool) {
	v, ok := r.settings[key]
	if !ok || falsy(v) {
		return nil, false
	}
	return v, true
}

func (r *resolver) mismatch(key, want string) {
	if r.err == nil {
		r.err = ErrInvalidSettings.WithMessagef("invalid settings: %s must be a %s", key, want).WithValue("setting", key)
	}
}

func (r *resolver) getFloat64(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	switch v := v.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	r.mismatch(key, "number")
	return def
}

func (r *resolver) getInt(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	switch v := v.(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	r.mismatch(key, "number")
	return def
}

func (r *resolver) getString(key string, def string) string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	r.mismatch(key, "string")
	return def
}

func (r *resolver) getBool(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	r.mismatch(key, "boolean")
	return def
}

func (r *resolver) getStringArray(key string, def []string) []string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	switch v := v.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				r.mismatch(key, "list of strings")
				return def
			}
			out = append(out, s)
		}
		return out
	}
	r.mismatch(key, "list of strings")
	return def
}

var templates = map[string]Params{}

// SetTemplate registers a named params preset. Presets act as the defaults
// record for requests that select them. Registration happens at startup,
// before any render runs.
func SetTemplate(name string, params Params) {
	templates[name] = params
}

// GetTemplate returns a deep copy of the named preset so per-request
// mutation cannot reach the registry.
func GetTemplate(name string) (Params, error) {
	p, ok := templates[name]
	if !ok {
		return DefaultParams, ErrUnknownTemplate.WithValue("template", name)
	}
	c, err := deepcopy.Anything(p)
	if err != nil {
		return DefaultParams, merry.Wrap(err)
	}
	return c.(Params), nil
}

// TemplateNames lists the registered template names, unordered.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}
