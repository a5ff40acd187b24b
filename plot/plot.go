// Package plot renders 2-D scatter plots as vector-graphic documents. The
// pipeline maps arbitrary data-value ranges onto a fixed pixel canvas:
// resolve settings, validate series, compute the axis extent, lay out the
// plot frame, then compose frame, tick marks, optional grid, point markers,
// tick-value labels and axis titles into an ordered primitive list.
//
// Every render call is independent and synchronous; no state is shared
// between calls apart from the startup-initialized template and palette
// registries.
package plot

import (
	"github.com/go-graphite/scatterapi/plot/types"
)

// Render resolves the settings mapping over the package defaults and
// composes the drawable document for the series list. On any validation
// failure no document is returned.
func Render(settings map[string]interface{}, series []types.Series) (*types.Document, error) {
	params, err := ResolveParams(settings, DefaultParams)
	if err != nil {
		return nil, err
	}
	return RenderWithParams(params, series)
}

// RenderWithParams is Render with an already resolved settings record,
// used when the caller merged over a named template.
func RenderWithParams(params Params, series []types.Series) (*types.Document, error) {
	cs := RandomColors()
	if len(params.ColorList) > 0 {
		cs = CycleColors(params.ColorList)
	}
	return render(params, series, cs)
}

func render(params Params, series []types.Series, cs ColorSource) (*types.Document, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	series, err := validateSeries(series, cs)
	if err != nil {
		return nil, err
	}

	params.BgColor = resolveColor(params.BgColor)
	params.FgColor = resolveColor(params.FgColor)

	frame := LayoutFrame(params)

	extent := dataExtent(seedExtent(params), series)
	if extent.Degenerate() {
		return nil, ErrDegenerateExtent.WithMessagef(
			"degenerate axis extent: x [%g, %g], y [%g, %g]",
			extent.XMin, extent.XMax, extent.YMin, extent.YMax)
	}

	mapper := NewMapper(frame, extent)

	n := primEstimate(params, series)
	doc := &types.Document{
		Width:      frame.CanvasW,
		Height:     frame.CanvasH,
		Background: params.BgColor,
		Prims:      make([]types.Prim, 0, n),
	}

	doc.Prims = append(doc.Prims, frameRect(params, frame))
	doc.Prims = append(doc.Prims, axisMarks(params, frame)...)
	if params.Grid {
		doc.Prims = append(doc.Prims, gridLines(params, frame)...)
	}
	doc.Prims = append(doc.Prims, renderPoints(params, &mapper, series)...)
	doc.Prims = append(doc.Prims, tickLabels(params, frame, extent)...)
	doc.Prims = append(doc.Prims, axisTitles(params, frame)...)

	return doc, nil
}

// validate enforces the documented ranges of the settings record that the
// geometry cannot survive without: positive sizes and a positive tick
// interval. Type checking already happened in the resolver.
func (p Params) validate() error {
	switch {
	case p.FontSize <= 0:
		return ErrInvalidSettings.WithMessage("invalid settings: fontSize must be positive")
	case p.Width <= 0 || p.Height <= 0:
		return ErrInvalidSettings.WithMessage("invalid settings: width and height must be positive")
	case p.PointSize <= 0:
		return ErrInvalidSettings.WithMessage("invalid settings: pointSize must be positive")
	case p.GraphAxisMarksInterval < 1:
		return ErrInvalidSettings.WithMessage("invalid settings: graphAxisMarksInterval must be positive")
	case p.XDecimalPlaces < 0 || p.YDecimalPlaces < 0:
		return ErrInvalidSettings.WithMessage("invalid settings: decimal places must not be negative")
	case p.GraphAxisMarksThickness < 0 || p.GraphFrameThickness < 0 || p.GraphFrameSetback < 0:
		return ErrInvalidSettings.WithMessage("invalid settings: thickness and setback must not be negative")
	}
	return nil
}

// validateSeries checks the shape invariants of every series and fills in
// the fallback styling: fill stays false when unset, a missing color is
// drawn once from the color source and kept for the whole render. Order is
// preserved.
func validateSeries(series []types.Series, cs ColorSource) ([]types.Series, error) {
	out := make([]types.Series, len(series))
	for i := range series {
		s := series[i]
		if s.X == nil || s.Y == nil {
			return nil, ErrInvalidSeries.WithMessagef("invalid series: series %d is missing x or y", i).WithValue("series", i)
		}
		if len(s.X) != len(s.Y) {
			return nil, ErrInvalidSeries.WithMessagef(
				"invalid series: series %d has %d x values but %d y values",
				i, len(s.X), len(s.Y)).WithValue("series", i)
		}
		if s.Color == "" {
			s.Color = cs.Color()
		}
		s.Color = resolveColor(s.Color)
		out[i] = s
	}
	return out, nil
}

func primEstimate(params Params, series []types.Series) int {
	n := 3 + 2*(params.GraphAxisMarksInterval+1) + totalPoints(series)
	if params.BiggerMarks {
		n += 2 * params.GraphAxisMarksInterval
	}
	if params.SmallerMarks {
		n += 2 * params.GraphAxisMarksInterval
	}
	if params.Grid {
		n += 2 * params.GraphAxisMarksInterval
	}
	return n
}
