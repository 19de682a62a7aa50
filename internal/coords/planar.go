package coords

// PolarToCartesian converts (r, θ) to (x, y). θ is reduced into [0, 2π).
func PolarToCartesian(r, theta float64) (x, y float64, err error) {
	p, err := ToCartesian(r, []float64{theta})
	if err != nil {
		return 0, 0, err
	}
	return p[0], p[1], nil
}

// CartesianToPolar converts (x, y) to (r, θ) with θ in [0, 2π). The origin
// yields θ = 0 and a *DegenerateInputError.
func CartesianToPolar(x, y float64) (r, theta float64, err error) {
	s, err := ToSpherical(Point{x, y})
	if s.Angles == nil {
		return 0, 0, err
	}
	return s.R, s.Angles[0], err
}

// CylindricalToCartesian converts (r, θ, h) to (x, y, z); h passes through.
func CylindricalToCartesian(r, theta, h float64) (x, y, z float64, err error) {
	x, y, err = PolarToCartesian(r, theta)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := checkFinite("height", h); err != nil {
		return 0, 0, 0, err
	}
	return x, y, h, nil
}

// CartesianToCylindrical converts (x, y, z) to (r, θ, h); z passes through.
func CartesianToCylindrical(x, y, z float64) (r, theta, h float64, err error) {
	if err := checkFinite("height", z); err != nil {
		return 0, 0, 0, err
	}
	r, theta, err = CartesianToPolar(x, y)
	return r, theta, z, err
}
