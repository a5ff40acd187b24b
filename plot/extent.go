package plot

import (
	"github.com/go-graphite/scatterapi/plot/types"
)

// Extent is the four-valued axis range that drives the data-to-pixel
// scale factors.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Degenerate reports a zero-span axis, which would make scaling undefined.
func (e Extent) Degenerate() bool {
	return e.XMax == e.XMin || e.YMax == e.YMin
}

func seedExtent(p Params) Extent {
	return Extent{XMin: p.XMin, XMax: p.XMax, YMin: p.YMin, YMax: p.YMax}
}

// dataExtent widens seed by every x and y value of every series in one
// pass. Seeds only widen, never narrow: an override tighter than the data
// still contributes its seed value to the result.
func dataExtent(seed Extent, series []types.Series) Extent {
	e := seed
	for i := range series {
		for _, x := range series[i].X {
			if x > e.XMax {
				e.XMax = x
			}
			if x < e.XMin {
				e.XMin = x
			}
		}
		for _, y := range series[i].Y {
			if y > e.YMax {
				e.YMax = y
			}
			if y < e.YMin {
				e.YMin = y
			}
		}
	}
	return e
}
