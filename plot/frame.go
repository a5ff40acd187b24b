package plot

import (
	"github.com/go-graphite/scatterapi/plot/types"
)

// Frame is the plotting rectangle inside the inflated canvas.
type Frame struct {
	X0, Y0 float64
	W, H   float64

	CanvasW float64
	CanvasH float64
}

// LayoutFrame computes the plotting rectangle for a resolved settings
// record. The canvas inflates the requested size by a fixed multiple of
// the font size to reserve label margins. The setback grows with the
// larger canvas dimension; wide canvases use a 2x factor so label margins
// stay comfortable.
func LayoutFrame(p Params) Frame {
	canvasW := p.Width + 6*p.FontSize
	canvasH := p.Height + 5*p.FontSize

	ratio := p.GraphFrameSetback / 100
	var setback float64
	if canvasH > canvasW {
		setback = canvasH * ratio
	} else {
		setback = 2 * canvasW * ratio
	}

	x0 := 2 * setback
	y0 := p.GraphFrameThickness + setback

	return Frame{
		X0:      x0,
		Y0:      y0,
		W:       canvasW - 2*x0,
		H:       canvasH - 2*y0,
		CanvasW: canvasW,
		CanvasH: canvasH,
	}
}

func frameRect(p Params, f Frame) types.Rect {
	return types.Rect{
		X:           f.X0,
		Y:           f.Y0,
		W:           f.W,
		H:           f.H,
		Stroke:      p.FgColor,
		StrokeWidth: p.GraphFrameThickness,
		Fill:        "none",
	}
}

// Mapper converts data-space coordinates into canvas pixels.
type Mapper struct {
	frame  Frame
	extent Extent
	xScale float64
	yScale float64
}

// NewMapper precomputes the scale factors for one frame and extent. The
// extent must be non-degenerate; the division is not guarded here.
func NewMapper(f Frame, e Extent) Mapper {
	return Mapper{
		frame:  f,
		extent: e,
		xScale: f.W / (e.XMax - e.XMin),
		yScale: f.H / (e.YMax - e.YMin),
	}
}

// Map returns the pixel position of a data point. The vertical axis is
// inverted: pixel space grows downward while data space grows upward, so
// (XMin, YMin) lands on the bottom-left frame corner and (XMax, YMax) on
// the top-right one.
func (m *Mapper) Map(x, y float64) (float64, float64) {
	px := m.frame.X0 + (x-m.extent.XMin)*m.xScale
	py := m.frame.Y0 - (y-m.extent.YMax)*m.yScale
	return px, py
}
