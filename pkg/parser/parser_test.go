package parser

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	body := []byte(`{
		"settings": {
			"width": 320,
			"grid": true,
			"xLabel": "time",
			"yMax": null,
			"colorList": ["red", "blue"]
		},
		"series": [
			{"x": [0, 1, 2], "y": [5, 3, 4], "color": "#ff0000", "fill": true, "pointSize": 3},
			{"x": [1.5], "y": [2.5]}
		]
	}`)

	req, err := ParseRequest(body)
	require.NoError(t, err)

	assert.Equal(t, 320.0, req.Settings["width"], "numbers must become float64")
	assert.Equal(t, true, req.Settings["grid"], "bools must pass through")
	assert.Equal(t, "time", req.Settings["xLabel"], "strings must pass through")
	assert.Nil(t, req.Settings["yMax"], "null reads as absent")
	assert.Equal(t, []interface{}{"red", "blue"}, req.Settings["colorList"], "arrays must convert")

	require.Len(t, req.Series, 2)
	assert.Equal(t, []float64{0, 1, 2}, req.Series[0].X, "bad x values")
	assert.Equal(t, []float64{5, 3, 4}, req.Series[0].Y, "bad y values")
	assert.Equal(t, "#ff0000", req.Series[0].Color, "bad color")
	assert.True(t, req.Series[0].Fill, "bad fill")
	assert.Equal(t, 3.0, req.Series[0].PointSize, "bad pointSize")

	assert.Equal(t, []float64{1.5}, req.Series[1].X, "bad second x")
	assert.Empty(t, req.Series[1].Color, "color stays empty when unset")
	assert.False(t, req.Series[1].Fill, "fill defaults to false")
}

func TestParseRequestShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "not json", body: `width=700`},
		{name: "not an object", body: `[1,2,3]`},
		{name: "settings not an object", body: `{"settings": 5, "series": []}`},
		{name: "missing series", body: `{"settings": {}}`},
		{name: "series not an array", body: `{"series": {"x": [1]}}`},
		{name: "series item not an object", body: `{"series": [42]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, merry.Is(err, ErrBadPayload), "want ErrBadPayload, got %v", err)
		})
	}
}

func TestParseRequestLooseFields(t *testing.T) {
	// malformed per-series fields degrade instead of failing the parse:
	// the series validator owns the x/y error, fill normalizes to false
	body := []byte(`{
		"series": [
			{"x": "zero", "y": [1], "fill": "yes", "pointSize": "big"},
			{"x": [1, "two", 3], "y": [1, 2, 3]},
			{"y": [1]}
		]
	}`)

	req, err := ParseRequest(body)
	require.NoError(t, err)
	require.Len(t, req.Series, 3)

	assert.Nil(t, req.Series[0].X, "non-array x must read as missing")
	assert.False(t, req.Series[0].Fill, "non-boolean fill normalizes to false")
	assert.Zero(t, req.Series[0].PointSize, "non-numeric pointSize reads as unset")
	assert.Nil(t, req.Series[1].X, "non-numeric element poisons the sequence")
	assert.Equal(t, []float64{1, 2, 3}, req.Series[1].Y, "good y must survive")
	assert.Nil(t, req.Series[2].X, "absent x stays nil")
}

func TestTruthyBool(t *testing.T) {
	for _, s := range []string{"1", "true", "True", "yes", "Yes"} {
		assert.True(t, TruthyBool(s), "%q must be truthy", s)
	}
	for _, s := range []string{"", "0", "false", "False", "no", "No", "2", "on"} {
		assert.False(t, TruthyBool(s), "%q must be falsy", s)
	}
}
