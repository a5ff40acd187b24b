package plot

import (
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/go-graphite/scatterapi/plot/types"
)

// axisMarks emits the tick marks for both axes: up to N major marks and N
// half-length minor marks per axis, stepping plotW/N along the x axis and
// plotH/N along the y axis away from the data origin corner. Majors sit at
// whole steps, minors at the interval midpoints. The biggerMarks and
// smallerMarks flags gate each kind.
func axisMarks(p Params, f Frame) []types.Prim {
	n := p.GraphAxisMarksInterval
	xStep := f.W / float64(n)
	yStep := f.H / float64(n)

	major := p.FontSize / 2
	minor := p.FontSize / 4

	prims := make([]types.Prim, 0, 4*n)

	if p.BiggerMarks {
		for i := 1; i <= n; i++ {
			x := f.X0 + float64(i)*xStep
			prims = append(prims, types.Line{
				X1: x, Y1: f.Y0 + f.H,
				X2: x, Y2: f.Y0 + f.H - major,
				Stroke:      p.FgColor,
				StrokeWidth: p.GraphAxisMarksThickness,
			})
		}
		for i := 1; i <= n; i++ {
			y := f.Y0 + f.H - float64(i)*yStep
			prims = append(prims, types.Line{
				X1: f.X0, Y1: y,
				X2: f.X0 + major, Y2: y,
				Stroke:      p.FgColor,
				StrokeWidth: p.GraphAxisMarksThickness,
			})
		}
	}

	if p.SmallerMarks {
		for i := 1; i <= n; i++ {
			x := f.X0 + (float64(i)-0.5)*xStep
			prims = append(prims, types.Line{
				X1: x, Y1: f.Y0 + f.H,
				X2: x, Y2: f.Y0 + f.H - minor,
				Stroke:      p.FgColor,
				StrokeWidth: p.GraphAxisMarksThickness,
			})
		}
		for i := 1; i <= n; i++ {
			y := f.Y0 + f.H - (float64(i)-0.5)*yStep
			prims = append(prims, types.Line{
				X1: f.X0, Y1: y,
				X2: f.X0 + minor, Y2: y,
				Stroke:      p.FgColor,
				StrokeWidth: p.GraphAxisMarksThickness,
			})
		}
	}

	return prims
}

// gridLines emits N dashed lines per axis at the major mark positions,
// spanning the full plot rectangle.
func gridLines(p Params, f Frame) []types.Prim {
	n := p.GraphAxisMarksInterval
	xStep := f.W / float64(n)
	yStep := f.H / float64(n)

	prims := make([]types.Prim, 0, 2*n)

	for i := 1; i <= n; i++ {
		x := f.X0 + float64(i)*xStep
		prims = append(prims, types.Line{
			X1: x, Y1: f.Y0,
			X2: x, Y2: f.Y0 + f.H,
			Stroke:      p.FgColor,
			StrokeWidth: 1,
			Dashed:      true,
		})
	}
	for i := 1; i <= n; i++ {
		y := f.Y0 + f.H - float64(i)*yStep
		prims = append(prims, types.Line{
			X1: f.X0, Y1: y,
			X2: f.X0 + f.W, Y2: y,
			Stroke:      p.FgColor,
			StrokeWidth: 1,
			Dashed:      true,
		})
	}

	return prims
}

// tickLabels emits N+1 tick-value text runs per axis, sampling the extent
// at N+1 evenly spaced points. X labels ascend left to right from xMin to
// xMax under the bottom edge; y labels descend top to bottom from yMax to
// yMin left of the left edge, following inverted pixel space.
func tickLabels(p Params, f Frame, e Extent) []types.Prim {
	n := p.GraphAxisMarksInterval
	xStep := f.W / float64(n)
	yStep := f.H / float64(n)

	xValues := floats.Span(make([]float64, n+1), e.XMin, e.XMax)
	yValues := floats.Span(make([]float64, n+1), e.YMax, e.YMin)

	prims := make([]types.Prim, 0, 2*n+2)

	for i, v := range xValues {
		prims = append(prims, types.Text{
			X:      f.X0 + float64(i)*xStep,
			Y:      f.Y0 + f.H + p.FontSize,
			S:      strconv.FormatFloat(v, 'f', p.XDecimalPlaces, 64),
			Font:   p.Font,
			Size:   p.FontSize,
			Fill:   p.FgColor,
			Anchor: types.AnchorMiddle,
		})
	}
	for i, v := range yValues {
		prims = append(prims, types.Text{
			X:      f.X0 - p.FontSize/2,
			Y:      f.Y0 + float64(i)*yStep,
			S:      strconv.FormatFloat(v, 'f', p.YDecimalPlaces, 64),
			Font:   p.Font,
			Size:   p.FontSize,
			Fill:   p.FgColor,
			Anchor: types.AnchorEnd,
		})
	}

	return prims
}

// axisTitles emits the two axis title runs, each centered on its axis. The
// y title reads bottom-up, rotated 90 degrees about its anchor.
func axisTitles(p Params, f Frame) []types.Prim {
	return []types.Prim{
		types.Text{
			X:      f.X0 + f.W/2,
			Y:      f.Y0 + f.H + 3*p.FontSize,
			S:      p.XLabel,
			Font:   p.Font,
			Size:   p.FontSize,
			Fill:   p.FgColor,
			Anchor: types.AnchorMiddle,
		},
		types.Text{
			X:      f.X0 - 3*p.FontSize,
			Y:      f.Y0 + f.H/2,
			S:      p.YLabel,
			Font:   p.Font,
			Size:   p.FontSize,
			Fill:   p.FgColor,
			Anchor: types.AnchorMiddle,
			Rotate: -90,
		},
	}
}
