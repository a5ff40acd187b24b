package plot

import (
	"github.com/go-graphite/scatterapi/plot/types"
)

// renderPoints emits one circle marker per data point per series. The
// marker radius is the per-series override when positive, else the
// resolved default. A filled series paints the marker with its own color;
// a hollow one keeps the background color inside the outline. Emission
// order is series order then point order, which is also the draw order.
func renderPoints(p Params, m *Mapper, series []types.Series) []types.Prim {
	prims := make([]types.Prim, 0, totalPoints(series))

	for i := range series {
		s := &series[i]

		r := p.PointSize
		if s.PointSize > 0 {
			r = s.PointSize
		}

		fill := p.BgColor
		if s.Fill {
			fill = s.Color
		}

		for j := range s.X {
			px, py := m.Map(s.X[j], s.Y[j])
			prims = append(prims, types.Circle{
				CX:          px,
				CY:          py,
				R:           r,
				Fill:        fill,
				Stroke:      s.Color,
				StrokeWidth: 1,
			})
		}
	}

	return prims
}

func totalPoints(series []types.Series) int {
	n := 0
	for i := range series {
		n += len(series[i].X)
	}
	return n
}
