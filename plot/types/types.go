package types

import (
	"bytes"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
	pickle "github.com/lomik/og-rek"
	stringutils "github.com/msaf1980/go-stringutils"
)

// Series is one collection of (x,y) pairs plotted together with shared
// styling. X and Y must be the same length.
type Series struct {
	X []float64
	Y []float64
	// Color is the series ink. When the caller leaves it empty it is
	// assigned once per render and then kept stable for that render.
	Color string
	Fill  bool
	// PointSize overrides the resolved default marker radius when positive.
	PointSize float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.X) }

// Prim is one drawable primitive. Concrete kinds are plain value structs,
// held by a Document in draw order.
type Prim interface {
	prim()
}

// Rect is a stroked rectangle.
type Rect struct {
	X, Y, W, H  float64
	Stroke      string
	StrokeWidth float64
	Fill        string
}

// Line is a straight segment. Dashed selects a dashed stroke.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	Dashed         bool
}

// Circle is a filled and stroked point marker.
type Circle struct {
	CX, CY, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Text anchor values.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Text is a single text run. Rotate is degrees clockwise about (X, Y).
type Text struct {
	X, Y   float64
	S      string
	Font   string
	Size   float64
	Fill   string
	Anchor string
	Rotate float64
}

func (Rect) prim()   {}
func (Line) prim()   {}
func (Circle) prim() {}
func (Text) prim()   {}

// Document is the assembled drawable graphic: canvas size, background color
// and the ordered primitive list. List order is draw order. A document is
// built once by the composer and read-only afterwards.
type Document struct {
	Width      float64
	Height     float64
	Background string
	Prims      []Prim
}

// MarshalSVG renders the document as a standalone SVG image. The canvas
// background is painted first, then the primitives in list order.
func MarshalSVG(d *Document) []byte {
	var buf bytes.Buffer

	canvas := svg.New(&buf)
	canvas.Start(d.Width, d.Height)
	canvas.Rect(0, 0, d.Width, d.Height, "fill:"+d.Background)

	for _, p := range d.Prims {
		switch p := p.(type) {
		case Rect:
			canvas.Rect(p.X, p.Y, p.W, p.H,
				"fill:"+p.Fill+";stroke:"+p.Stroke+";stroke-width:"+ftoa(p.StrokeWidth))
		case Line:
			style := "stroke:" + p.Stroke + ";stroke-width:" + ftoa(p.StrokeWidth)
			if p.Dashed {
				style += ";stroke-dasharray:4,3"
			}
			canvas.Line(p.X1, p.Y1, p.X2, p.Y2, style)
		case Circle:
			canvas.Circle(p.CX, p.CY, p.R,
				"fill:"+p.Fill+";stroke:"+p.Stroke+";stroke-width:"+ftoa(p.StrokeWidth))
		case Text:
			style := "font-family:" + p.Font +
				";font-size:" + ftoa(p.Size) + "px" +
				";fill:" + p.Fill +
				";text-anchor:" + p.Anchor
			if p.Rotate != 0 {
				canvas.TranslateRotate(p.X, p.Y, p.Rotate)
				canvas.Text(0, 0, p.S, style)
				canvas.Gend()
			} else {
				canvas.Text(p.X, p.Y, p.S, style)
			}
		}
	}

	canvas.End()

	return buf.Bytes()
}

// MarshalJSON marshals the document as a JSON primitive tree. Every
// primitive object carries a "type" discriminator first.
func MarshalJSON(d *Document) []byte {
	var b stringutils.Builder
	b.Grow(128 + 96*len(d.Prims))

	b.WriteString(`{"width":`)
	writeFloat(&b, d.Width)
	b.WriteString(`,"height":`)
	writeFloat(&b, d.Height)
	b.WriteString(`,"background":`)
	writeQuoted(&b, d.Background)
	b.WriteString(`,"prims":[`)

	for i, p := range d.Prims {
		if i > 0 {
			b.WriteByte(',')
		}
		switch p := p.(type) {
		case Rect:
			b.WriteString(`{"type":"rect","x":`)
			writeFloat(&b, p.X)
			b.WriteString(`,"y":`)
			writeFloat(&b, p.Y)
			b.WriteString(`,"w":`)
			writeFloat(&b, p.W)
			b.WriteString(`,"h":`)
			writeFloat(&b, p.H)
			b.WriteString(`,"stroke":`)
			writeQuoted(&b, p.Stroke)
			b.WriteString(`,"strokeWidth":`)
			writeFloat(&b, p.StrokeWidth)
			b.WriteString(`,"fill":`)
			writeQuoted(&b, p.Fill)
			b.WriteByte('}')
		case Line:
			b.WriteString(`{"type":"line","x1":`)
			writeFloat(&b, p.X1)
			b.WriteString(`,"y1":`)
			writeFloat(&b, p.Y1)
			b.WriteString(`,"x2":`)
			writeFloat(&b, p.X2)
			b.WriteString(`,"y2":`)
			writeFloat(&b, p.Y2)
			b.WriteString(`,"stroke":`)
			writeQuoted(&b, p.Stroke)
			b.WriteString(`,"strokeWidth":`)
			writeFloat(&b, p.StrokeWidth)
			b.WriteString(`,"dashed":`)
			if p.Dashed {
				b.WriteString("true")
			} else {
				b.WriteString("false")
			}
			b.WriteByte('}')
		case Circle:
			b.WriteString(`{"type":"circle","cx":`)
			writeFloat(&b, p.CX)
			b.WriteString(`,"cy":`)
			writeFloat(&b, p.CY)
			b.WriteString(`,"r":`)
			writeFloat(&b, p.R)
			b.WriteString(`,"fill":`)
			writeQuoted(&b, p.Fill)
			b.WriteString(`,"stroke":`)
			writeQuoted(&b, p.Stroke)
			b.WriteString(`,"strokeWidth":`)
			writeFloat(&b, p.StrokeWidth)
			b.WriteByte('}')
		case Text:
			b.WriteString(`{"type":"text","x":`)
			writeFloat(&b, p.X)
			b.WriteString(`,"y":`)
			writeFloat(&b, p.Y)
			b.WriteString(`,"s":`)
			writeQuoted(&b, p.S)
			b.WriteString(`,"font":`)
			writeQuoted(&b, p.Font)
			b.WriteString(`,"size":`)
			writeFloat(&b, p.Size)
			b.WriteString(`,"fill":`)
			writeQuoted(&b, p.Fill)
			b.WriteString(`,"anchor":`)
			writeQuoted(&b, p.Anchor)
			b.WriteString(`,"rotate":`)
			writeFloat(&b, p.Rotate)
			b.WriteByte('}')
		}
	}

	b.WriteString(`]}`)

	return b.Bytes()
}

// MarshalPickle marshals the document to pickle format: a list whose first
// element is the document header and the rest one map per primitive.
func MarshalPickle(d *Document) []byte {
	p := make([]map[string]interface{}, 0, len(d.Prims)+1)

	p = append(p, map[string]interface{}{
		"type":       "document",
		"width":      d.Width,
		"height":     d.Height,
		"background": d.Background,
	})

	for _, pr := range d.Prims {
		switch pr := pr.(type) {
		case Rect:
			p = append(p, map[string]interface{}{
				"type":        "rect",
				"x":           pr.X,
				"y":           pr.Y,
				"w":           pr.W,
				"h":           pr.H,
				"stroke":      pr.Stroke,
				"strokeWidth": pr.StrokeWidth,
				"fill":        pr.Fill,
			})
		case Line:
			p = append(p, map[string]interface{}{
				"type":        "line",
				"x1":          pr.X1,
				"y1":          pr.Y1,
				"x2":          pr.X2,
				"y2":          pr.Y2,
				"stroke":      pr.Stroke,
				"strokeWidth": pr.StrokeWidth,
				"dashed":      pr.Dashed,
			})
		case Circle:
			p = append(p, map[string]interface{}{
				"type":        "circle",
				"cx":          pr.CX,
				"cy":          pr.CY,
				"r":           pr.R,
				"fill":        pr.Fill,
				"stroke":      pr.Stroke,
				"strokeWidth": pr.StrokeWidth,
			})
		case Text:
			p = append(p, map[string]interface{}{
				"type":   "text",
				"x":      pr.X,
				"y":      pr.Y,
				"s":      pr.S,
				"font":   pr.Font,
				"size":   pr.Size,
				"fill":   pr.Fill,
				"anchor": pr.Anchor,
				"rotate": pr.Rotate,
			})
		}
	}

	var buf bytes.Buffer

	penc := pickle.NewEncoder(&buf)
	_ = penc.Encode(p)

	return buf.Bytes()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeFloat(b *stringutils.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

func writeQuoted(b *stringutils.Builder, s string) {
	b.WriteString(strconv.QuoteToASCII(s))
}
