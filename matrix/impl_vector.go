// SPDX-License-Identifier: MIT
// Package matrix: vector kernels over []E.
//
// Exact results (Dot, LinearCombination, Project) stay in the backend's element
// type; metric results (Norm, Distance, Angle) are float64 by nature.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvlinalg/field"
)

const (
	opDot         = "Dot"
	opCombination = "LinearCombination"
	opProject     = "Project"
	opDistance    = "Distance"
	opAngle       = "Angle"
)

// AngleKind classifies the angle between two vectors by the sign of their dot product.
type AngleKind int

const (
	Right AngleKind = iota
	Acute
	Obtuse
)

// String implements fmt.Stringer.
func (k AngleKind) String() string {
	switch k {
	case Acute:
		return "acute"
	case Obtuse:
		return "obtuse"
	default:
		return "right"
	}
}

// Dot returns Σ u[i]·v[i].
//
// Errors:
//   - ErrDimensionMismatch when lengths differ.
func Dot[E any](f field.Field[E], u, v []E) (E, error) {
	if err := ValidateVecLen(v, len(u)); err != nil {
		var zero E
		return zero, matrixErrorf(opDot, err)
	}
	acc := f.Zero()
	for i := range u {
		acc = f.Add(acc, f.Mul(u[i], v[i]))
	}

	return acc, nil
}

// LinearCombination returns Σ coeffs[k]·vectors[k].
//
// Errors:
//   - ErrDimensionMismatch when len(coeffs) != len(vectors) or vector lengths differ.
//   - ErrZeroVector when no vectors are given (the length of the result is unknown).
func LinearCombination[E any](f field.Field[E], coeffs []E, vectors [][]E) ([]E, error) {
	if err := ValidateVecLen(coeffs, len(vectors)); err != nil {
		return nil, matrixErrorf(opCombination, err)
	}
	if len(vectors) == 0 {
		return nil, matrixErrorf(opCombination, ErrZeroVector)
	}
	n := len(vectors[0])
	out := make([]E, n)
	for i := range out {
		out[i] = f.Zero()
	}
	for k, vec := range vectors {
		if err := ValidateVecLen(vec, n); err != nil {
			return nil, matrixErrorf(opCombination, err)
		}
		for i := range vec {
			out[i] = f.Add(out[i], f.Mul(coeffs[k], vec[i]))
		}
	}

	return out, nil
}

// Project returns the projection of v onto u: (u·v / u·u)·u.
//
// Errors:
//   - ErrDimensionMismatch, ErrZeroVector (u is zero).
func Project[E any](f field.Field[E], v, u []E) ([]E, error) {
	uv, err := Dot(f, u, v)
	if err != nil {
		return nil, matrixErrorf(opProject, err)
	}
	uu, _ := Dot(f, u, u)
	if f.IsZero(uu) {
		return nil, matrixErrorf(opProject, ErrZeroVector)
	}
	k := f.Quo(uv, uu)
	out := make([]E, len(u))
	for i := range u {
		out[i] = f.Mul(k, u[i])
	}

	return out, nil
}

// Norm returns the Euclidean length of v.
func Norm[E any](f field.Field[E], v []E) float64 {
	sq, _ := Dot(f, v, v)

	return math.Sqrt(f.Float64(sq))
}

// Distance returns the Euclidean distance ‖u − v‖.
func Distance[E any](f field.Field[E], u, v []E) (float64, error) {
	if err := ValidateVecLen(v, len(u)); err != nil {
		return 0, matrixErrorf(opDistance, err)
	}
	diff := make([]E, len(u))
	for i := range u {
		diff[i] = f.Sub(u[i], v[i])
	}

	return Norm(f, diff), nil
}

// Angle returns the angle between u and v in degrees.
//
// Errors:
//   - ErrDimensionMismatch, ErrZeroVector.
func Angle[E any](f field.Field[E], u, v []E) (float64, error) {
	d, err := Dot(f, u, v)
	if err != nil {
		return 0, matrixErrorf(opAngle, err)
	}
	nu, nv := Norm(f, u), Norm(f, v)
	if nu == 0 || nv == 0 {
		return 0, matrixErrorf(opAngle, ErrZeroVector)
	}
	// clamp: rounding can push |cos| past 1
	cos := math.Max(-1, math.Min(1, f.Float64(d)/(nu*nv)))

	return math.Acos(cos) * 180 / math.Pi, nil
}

// ClassifyAngle reports whether u and v meet at an acute, right or obtuse angle.
// A dot product that is zero under the backend's policy is a right angle.
func ClassifyAngle[E any](f field.Field[E], u, v []E) (AngleKind, error) {
	d, err := Dot(f, u, v)
	if err != nil {
		return Right, matrixErrorf(opAngle, err)
	}
	switch {
	case f.IsZero(d):
		return Right, nil
	case f.Float64(d) > 0:
		return Acute, nil
	default:
		return Obtuse, nil
	}
}

// Orthogonal reports whether u·v is zero under the backend's policy.
func Orthogonal[E any](f field.Field[E], u, v []E) (bool, error) {
	k, err := ClassifyAngle(f, u, v)

	return k == Right && err == nil, err
}
