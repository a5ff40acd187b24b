package compare

import (
	"math"

	"github.com/go-graphite/scatterapi/plot/types"
)

const eps = 0.0000000001

func compareFloat64(v1, v2 float64) bool {
	if math.IsNaN(v1) && math.IsNaN(v2) {
		return true
	}
	if math.IsInf(v1, 1) && math.IsInf(v2, 1) {
		return true
	}
	if math.IsInf(v1, -1) && math.IsInf(v2, -1) {
		return true
	}

	d := math.Abs(v1 - v2)
	return d < eps
}

func NearlyEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !compareFloat64(a[i], b[i]) {
			return false
		}
	}

	return true
}

// SeriesIsEqual compares two series field by field, with the value
// sequences held to near equality instead of exact bits.
func SeriesIsEqual(s1, s2 *types.Series) bool {
	if !NearlyEqual(s1.X, s2.X) || !NearlyEqual(s1.Y, s2.Y) {
		return false
	}
	if s1.Color != s2.Color || s1.Fill != s2.Fill {
		return false
	}
	return compareFloat64(s1.PointSize, s2.PointSize)
}
