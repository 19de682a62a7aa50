package coords

// SphericalToCartesian converts (r, θ, φ) to (x, y, z), where θ is the
// polar angle from the z axis and φ the azimuth in the xy plane.
//
// In the general ordering the z axis is coordinate 0, so this is
// ToCartesian(r, [θ, φ]) read back as (x, y, z) = (X[1], X[2], X[0]).
func SphericalToCartesian(r, theta, phi float64) (x, y, z float64, err error) {
	p, err := ToCartesian(r, []float64{theta, phi})
	if err != nil {
		return 0, 0, 0, err
	}
	return p[1], p[2], p[0], nil
}

// CartesianToSpherical converts (x, y, z) to (r, θ, φ) with θ in [0, π]
// and φ in [0, 2π). Points on the z axis yield φ = 0 and a
// *DegenerateInputError.
func CartesianToSpherical(x, y, z float64) (r, theta, phi float64, err error) {
	s, err := ToSpherical(Point{z, x, y})
	if s.Angles == nil {
		return 0, 0, 0, err
	}
	return s.R, s.Angles[0], s.Angles[1], err
}
