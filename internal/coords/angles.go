package coords

import "math"

const twoPi = 2 * math.Pi

// floorMod returns a mod m in [0, m).
func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r -= m
	}
	return r
}

// NormalizePolar maps a polar-type angle outside [0, π] into it by
// reduction modulo π. Angles already in range, π included, are unchanged.
func NormalizePolar(a float64) float64 {
	if a < 0 || a > math.Pi {
		return floorMod(a, math.Pi)
	}
	return a
}

// NormalizeAzimuth maps an angle into [0, 2π).
func NormalizeAzimuth(a float64) float64 {
	return floorMod(a, twoPi)
}
