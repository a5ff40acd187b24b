package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-graphite/scatterapi/plot/types"
)

func TestDataExtent(t *testing.T) {
	tests := []struct {
		name   string
		seed   Extent
		series []types.Series
		want   Extent
	}{
		{
			name: "zero seed widened by data",
			seed: Extent{},
			series: []types.Series{
				{X: []float64{0, 10}, Y: []float64{-5, 10}},
			},
			want: Extent{XMin: 0, XMax: 10, YMin: -5, YMax: 10},
		},
		{
			name: "seed is never narrowed",
			seed: Extent{YMin: -5},
			series: []types.Series{
				{X: []float64{1, 2, 3}, Y: []float64{0, 4, 8}},
			},
			want: Extent{XMin: 0, XMax: 3, YMin: -5, YMax: 8},
		},
		{
			name: "tight seed loses to wider data",
			seed: Extent{XMax: 3, YMax: 3},
			series: []types.Series{
				{X: []float64{0, 10}, Y: []float64{0, 10}},
			},
			want: Extent{XMin: 0, XMax: 10, YMin: 0, YMax: 10},
		},
		{
			name: "union across series",
			seed: Extent{},
			series: []types.Series{
				{X: []float64{-2, 1}, Y: []float64{1, 2}},
				{X: []float64{5, 9}, Y: []float64{-3, 7}},
			},
			want: Extent{XMin: -2, XMax: 9, YMin: -3, YMax: 7},
		},
		{
			name:   "no series keeps the seed",
			seed:   Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
			series: nil,
			want:   Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dataExtent(tt.seed, tt.series)
			assert.Equal(t, tt.want, got, "bad extent")
		})
	}
}

func TestExtentDegenerate(t *testing.T) {
	assert.True(t, Extent{}.Degenerate(), "zero extent must be degenerate")
	assert.True(t, Extent{XMin: 0, XMax: 5}.Degenerate(), "flat y extent must be degenerate")
	assert.True(t, Extent{YMin: 0, YMax: 5}.Degenerate(), "flat x extent must be degenerate")
	assert.False(t, Extent{XMin: 0, XMax: 5, YMin: -1, YMax: 1}.Degenerate(), "spanning extent must not be degenerate")
}
