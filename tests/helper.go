// Package tests holds shared fixtures for the render pipeline tests,
// conventionally imported as th.
package tests

import (
	"testing"

	"github.com/go-graphite/scatterapi/plot/types"
	"github.com/go-graphite/scatterapi/tests/compare"
)

// MakeSeries builds an unstyled series over the given value sequences.
func MakeSeries(x, y []float64) types.Series {
	return types.Series{X: x, Y: y}
}

// MakeColoredSeries builds a series with an explicit ink color.
func MakeColoredSeries(x, y []float64, color string) types.Series {
	return types.Series{X: x, Y: y, Color: color}
}

// DeepClone copies a series list including the value sequences, so a later
// DeepEqual can prove the originals were left alone.
func DeepClone(original []types.Series) []types.Series {
	clone := make([]types.Series, len(original))
	for i, s := range original {
		copied := types.Series{
			X:         make([]float64, len(s.X)),
			Y:         make([]float64, len(s.Y)),
			Color:     s.Color,
			Fill:      s.Fill,
			PointSize: s.PointSize,
		}
		copy(copied.X, s.X)
		copy(copied.Y, s.Y)
		if s.X == nil {
			copied.X = nil
		}
		if s.Y == nil {
			copied.Y = nil
		}
		clone[i] = copied
	}

	return clone
}

// DeepEqual fails the test when the modified series list no longer matches
// the original snapshot.
func DeepEqual(t *testing.T, target string, original, modified []types.Series) {
	if len(original) != len(modified) {
		t.Errorf("%s: source data was modified, original length %d, new length %d",
			target, len(original), len(modified))
		return
	}
	for i := range original {
		if !compare.SeriesIsEqual(&original[i], &modified[i]) {
			t.Errorf("%s: source data was modified at series %d, original:\n%+v\nmodified:\n%+v",
				target, i, original[i], modified[i])
		}
	}
}
