package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	pickle "github.com/lomik/og-rek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Width:      100,
		Height:     80,
		Background: "white",
		Prims: []Prim{
			Rect{X: 10, Y: 10, W: 80, H: 60, Stroke: "black", StrokeWidth: 2, Fill: "none"},
			Line{X1: 10, Y1: 70, X2: 90, Y2: 70, Stroke: "black", StrokeWidth: 1, Dashed: true},
			Circle{CX: 50, CY: 40, R: 2, Fill: "#ff0000", Stroke: "#ff0000", StrokeWidth: 1},
			Text{X: 50, Y: 78, S: "x axis", Font: "SourceSansPro-Regular", Size: 16, Fill: "black", Anchor: AnchorMiddle},
			Text{X: 4, Y: 40, S: "y axis", Font: "SourceSansPro-Regular", Size: 16, Fill: "black", Anchor: AnchorMiddle, Rotate: -90},
		},
	}
}

func TestMarshalSVG(t *testing.T) {
	d := sampleDocument()
	out := string(MarshalSVG(d))

	assert.True(t, strings.HasPrefix(out, "<?xml"), "svg preamble missing")
	assert.Contains(t, out, "<svg", "svg root missing")
	assert.Contains(t, out, "</svg>", "svg not closed")
	assert.Contains(t, out, "fill:white", "background fill missing")
	assert.Contains(t, out, "stroke-dasharray", "dashed line style missing")
	assert.Contains(t, out, "text-anchor:middle", "text anchor missing")
	assert.Contains(t, out, "rotate(-90", "rotated text transform missing")
	assert.Contains(t, out, "x axis", "axis title missing")

	// background rect + one rect, one line, one circle, two texts
	assert.Equal(t, 2, strings.Count(out, "<rect"), "rect count")
	assert.Equal(t, 1, strings.Count(out, "<line"), "line count")
	assert.Equal(t, 1, strings.Count(out, "<circle"), "circle count")
	assert.Equal(t, 2, strings.Count(out, "<text"), "text count")
}

func TestMarshalJSON(t *testing.T) {
	d := sampleDocument()
	b := MarshalJSON(d)

	var got struct {
		Width      float64 `json:"width"`
		Height     float64 `json:"height"`
		Background string  `json:"background"`
		Prims      []struct {
			Type   string  `json:"type"`
			R      float64 `json:"r"`
			S      string  `json:"s"`
			Dashed bool    `json:"dashed"`
			Rotate float64 `json:"rotate"`
		} `json:"prims"`
	}
	err := json.Unmarshal(b, &got)
	require.NoError(t, err, "marshaled document must be valid json")

	assert.Equal(t, 100.0, got.Width, "bad width")
	assert.Equal(t, 80.0, got.Height, "bad height")
	assert.Equal(t, "white", got.Background, "bad background")
	require.Len(t, got.Prims, 5, "bad primitive count")

	wantTypes := []string{"rect", "line", "circle", "text", "text"}
	for i, p := range got.Prims {
		assert.Equal(t, wantTypes[i], p.Type, "primitive order must match draw order")
	}
	assert.True(t, got.Prims[1].Dashed, "line must be dashed")
	assert.Equal(t, 2.0, got.Prims[2].R, "bad circle radius")
	assert.Equal(t, "x axis", got.Prims[3].S, "bad text run")
	assert.Equal(t, -90.0, got.Prims[4].Rotate, "bad text rotation")
}

func TestMarshalPickle(t *testing.T) {
	d := sampleDocument()
	b := MarshalPickle(d)

	v, err := pickle.NewDecoder(bytes.NewReader(b)).Decode()
	require.NoError(t, err, "marshaled document must decode")

	list, ok := v.([]interface{})
	require.True(t, ok, "pickle payload must be a list")
	require.Len(t, list, 6, "header plus one entry per primitive")

	header, ok := list[0].(map[interface{}]interface{})
	require.True(t, ok, "header must be a dict")
	assert.Equal(t, "document", header["type"], "bad header type")
	assert.Equal(t, 100.0, header["width"], "bad header width")

	first, ok := list[1].(map[interface{}]interface{})
	require.True(t, ok, "entry must be a dict")
	assert.Equal(t, "rect", first["type"], "bad first primitive")
}
