// Package parser turns render request payloads into the settings mapping
// and series list the plot pipeline consumes.
package parser

import (
	"net/http"

	"github.com/ansel1/merry"
	"github.com/valyala/fastjson"

	"github.com/go-graphite/scatterapi/plot/types"
)

// ErrBadPayload is returned when the request body is not a JSON object of
// the documented shape.
var ErrBadPayload = merry.New("bad request payload").WithHTTPCode(http.StatusBadRequest)

var parserPool fastjson.ParserPool

// Request is a parsed render payload: the raw settings mapping, still
// untyped, plus the series list. Settings typing is the resolver's job;
// series x/y sequences that are not numeric arrays stay nil so the series
// validator reports them.
type Request struct {
	Settings map[string]interface{}
	Series   []types.Series
}

// ParseRequest parses a render request body. The body must be a JSON
// object with an optional "settings" object and a "series" array of
// objects carrying "x", "y" and the optional "color", "fill" and
// "pointSize" styling fields.
func ParseRequest(body []byte) (*Request, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, ErrBadPayload.WithCause(err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, ErrBadPayload.WithMessage("bad request payload: body must be a JSON object")
	}

	req := &Request{}

	if sv := v.Get("settings"); sv != nil && sv.Type() != fastjson.TypeNull {
		obj, err := sv.Object()
		if err != nil {
			return nil, ErrBadPayload.WithMessage("bad request payload: settings must be an object")
		}
		req.Settings = make(map[string]interface{}, obj.Len())
		obj.Visit(func(key []byte, val *fastjson.Value) {
			req.Settings[string(key)] = convertValue(val)
		})
	}

	sv := v.Get("series")
	if sv == nil {
		return nil, ErrBadPayload.WithMessage("bad request payload: series is required")
	}
	items, err := sv.Array()
	if err != nil {
		return nil, ErrBadPayload.WithMessage("bad request payload: series must be an array")
	}

	req.Series = make([]types.Series, 0, len(items))
	for i, item := range items {
		if item.Type() != fastjson.TypeObject {
			return nil, ErrBadPayload.WithMessagef("bad request payload: series %d must be an object", i)
		}
		s := types.Series{
			X: floatSlice(item.Get("x")),
			Y: floatSlice(item.Get("y")),
		}
		if cv := item.Get("color"); cv != nil {
			if b, err := cv.StringBytes(); err == nil {
				s.Color = string(b)
			}
		}
		// a non-boolean fill normalizes to false
		if fv := item.Get("fill"); fv != nil {
			if b, err := fv.Bool(); err == nil {
				s.Fill = b
			}
		}
		if pv := item.Get("pointSize"); pv != nil {
			if f, err := pv.Float64(); err == nil {
				s.PointSize = f
			}
		}
		req.Series = append(req.Series, s)
	}

	return req, nil
}

// convertValue lowers a fastjson value into the plain Go value the settings
// resolver type-checks against its defaults.
func convertValue(v *fastjson.Value) interface{} {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil
	case fastjson.TypeNumber:
		f, _ := v.Float64()
		return f
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return string(b)
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]interface{}, 0, len(items))
		for _, e := range items {
			out = append(out, convertValue(e))
		}
		return out
	case fastjson.TypeObject:
		obj, _ := v.Object()
		out := make(map[string]interface{}, obj.Len())
		obj.Visit(func(key []byte, val *fastjson.Value) {
			out[string(key)] = convertValue(val)
		})
		return out
	}
	return nil
}

// floatSlice converts a JSON array of numbers, returning nil for anything
// else so the shape failure surfaces in series validation.
func floatSlice(v *fastjson.Value) []float64 {
	if v == nil {
		return nil
	}
	items, err := v.Array()
	if err != nil {
		return nil
	}
	out := make([]float64, 0, len(items))
	for _, e := range items {
		f, err := e.Float64()
		if err != nil {
			return nil
		}
		out = append(out, f)
	}
	return out
}

// TruthyBool reports whether a query-string flag value reads as true.
// Anything unrecognized is false.
func TruthyBool(s string) bool {
	switch s {
	case "1", "true", "True", "yes", "Yes":
		return true
	}
	return false
}
