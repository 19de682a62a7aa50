package numeric

import "math"

// NoiseFloor is the magnitude below which float64 results are treated as
// round-off and replaced by exact zero.
const NoiseFloor = 1e-14

// Snap returns 0 when |v| < NoiseFloor and v otherwise.
func Snap(v float64) float64 {
	if math.Abs(v) < NoiseFloor {
		return 0
	}
	return v
}
