// Package coords converts between Cartesian coordinates and polar,
// cylindrical, spherical and n-dimensional hyperspherical coordinates.
//
// The general routines are [ToCartesian] and [ToSpherical]. For a point of
// dimension n there is one radius and n-1 angles φ_0 … φ_{n-2}:
//
//	x_i     = r · sin φ_0 · … · sin φ_{i-1} · cos φ_i    (i < n-1)
//	x_{n-1} = r · sin φ_0 · … · sin φ_{n-2}
//
// φ_0 … φ_{n-3} lie in [0, π] and the last angle lies in [0, 2π). The
// polar, cylindrical and spherical helpers are thin wrappers over the
// general routines and return identical values.
//
// Components and angles with magnitude below [numeric.NoiseFloor] are
// returned as exact zero.
//
// # Sign of the last angle
//
// The inverse recovers each angle with acos and flips only the last one
// when the final coordinate is negative, following the usual
// hyperspherical convention.
package coords
