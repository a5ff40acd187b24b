package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-graphite/scatterapi/plot/types"
)

func TestAxisMarksCounts(t *testing.T) {
	tests := []struct {
		name    string
		bigger  bool
		smaller bool
		n       int
		want    int
	}{
		{name: "major only", bigger: true, smaller: false, n: 6, want: 12},
		{name: "major and minor", bigger: true, smaller: true, n: 4, want: 16},
		{name: "minor only", bigger: false, smaller: true, n: 6, want: 12},
		{name: "none", bigger: false, smaller: false, n: 6, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams
			p.BiggerMarks = tt.bigger
			p.SmallerMarks = tt.smaller
			p.GraphAxisMarksInterval = tt.n

			got := axisMarks(p, LayoutFrame(p))
			assert.Len(t, got, tt.want, "bad mark count")
			for _, pr := range got {
				_, ok := pr.(types.Line)
				assert.True(t, ok, "marks must be lines")
			}
		})
	}
}

func TestAxisMarksGeometry(t *testing.T) {
	p := DefaultParams
	p.GraphAxisMarksInterval = 4
	p.SmallerMarks = true
	f := LayoutFrame(p)

	marks := axisMarks(p, f)
	require.Len(t, marks, 16)

	// first major x mark sits one step right of the origin corner and
	// rises half a font size into the plot
	first := marks[0].(types.Line)
	assert.InDelta(t, f.X0+f.W/4, first.X1, 1e-9, "bad major x position")
	assert.InDelta(t, f.Y0+f.H, first.Y1, 1e-9, "mark must start on the bottom edge")
	assert.InDelta(t, f.Y0+f.H-p.FontSize/2, first.Y2, 1e-9, "bad major length")
	assert.Equal(t, p.GraphAxisMarksThickness, first.StrokeWidth, "bad mark thickness")

	// first minor x mark sits at the interval midpoint at half length
	minor := marks[8].(types.Line)
	assert.InDelta(t, f.X0+f.W/8, minor.X1, 1e-9, "bad minor x position")
	assert.InDelta(t, f.Y0+f.H-p.FontSize/4, minor.Y2, 1e-9, "bad minor length")
}

func TestGridLines(t *testing.T) {
	p := DefaultParams
	p.GraphAxisMarksInterval = 5
	f := LayoutFrame(p)

	got := gridLines(p, f)
	require.Len(t, got, 10, "N dashed lines per axis")

	for _, pr := range got {
		ln, ok := pr.(types.Line)
		require.True(t, ok, "grid must be lines")
		assert.True(t, ln.Dashed, "grid lines must be dashed")
	}

	// verticals span the full plot height, horizontals the full width
	v := got[0].(types.Line)
	assert.InDelta(t, f.Y0, v.Y1, 1e-9, "bad vertical top")
	assert.InDelta(t, f.Y0+f.H, v.Y2, 1e-9, "bad vertical bottom")
	h := got[5].(types.Line)
	assert.InDelta(t, f.X0, h.X1, 1e-9, "bad horizontal left")
	assert.InDelta(t, f.X0+f.W, h.X2, 1e-9, "bad horizontal right")
}

func TestTickLabels(t *testing.T) {
	p := DefaultParams
	p.GraphAxisMarksInterval = 4
	p.XDecimalPlaces = 1
	p.YDecimalPlaces = 1
	f := LayoutFrame(p)
	e := Extent{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	got := tickLabels(p, f, e)
	require.Len(t, got, 10, "N+1 labels per axis")

	var xs, ys []string
	for i := 0; i < 5; i++ {
		xs = append(xs, got[i].(types.Text).S)
		ys = append(ys, got[i+5].(types.Text).S)
	}
	assert.Equal(t, []string{"0.0", "2.5", "5.0", "7.5", "10.0"}, xs, "x labels must ascend from xMin to xMax")
	assert.Equal(t, []string{"10.0", "7.5", "5.0", "2.5", "0.0"}, ys, "y labels must descend from yMax to yMin")

	// x labels sit under the bottom edge at even steps
	x0 := got[0].(types.Text)
	x1 := got[1].(types.Text)
	assert.InDelta(t, f.X0, x0.X, 1e-9, "first x label at the left edge")
	assert.InDelta(t, f.W/4, x1.X-x0.X, 1e-9, "bad x label step")
	assert.InDelta(t, f.Y0+f.H+p.FontSize, x0.Y, 1e-9, "x labels under the frame")
	assert.Equal(t, types.AnchorMiddle, x0.Anchor, "bad x label anchor")

	// y labels sit left of the frame, top down
	y0 := got[5].(types.Text)
	assert.InDelta(t, f.X0-p.FontSize/2, y0.X, 1e-9, "y labels left of the frame")
	assert.InDelta(t, f.Y0, y0.Y, 1e-9, "first y label at the top edge")
	assert.Equal(t, types.AnchorEnd, y0.Anchor, "bad y label anchor")
}

func TestAxisTitles(t *testing.T) {
	p := DefaultParams
	f := LayoutFrame(p)

	got := axisTitles(p, f)
	require.Len(t, got, 2)

	x := got[0].(types.Text)
	assert.Equal(t, "x axis", x.S, "bad x title")
	assert.InDelta(t, f.X0+f.W/2, x.X, 1e-9, "x title must be centered")
	assert.Equal(t, 0.0, x.Rotate, "x title must not be rotated")

	y := got[1].(types.Text)
	assert.Equal(t, "y axis", y.S, "bad y title")
	assert.InDelta(t, f.Y0+f.H/2, y.Y, 1e-9, "y title must be centered")
	assert.Equal(t, -90.0, y.Rotate, "y title must be rotated")
}
