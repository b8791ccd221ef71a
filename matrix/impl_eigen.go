// SPDX-License-Identifier: MIT
// Package matrix: numeric eigen analysis backed by gonum.
//
// Eigenvalues are computed in float64 whatever the input backend; exact input is
// converted first. Repeated eigenvalues come back from the QR iteration slightly
// split, so they are clustered with EigenTolerance before multiplicities are
// counted.

package matrix

import (
	"cmp"
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/field"
)

const (
	opEigen    = "Eigen"
	opEigenSym = "EigenSym"
)

// EigenTolerance is the relative distance under which two computed eigenvalues
// are considered equal, and the rank tolerance used for geometric multiplicities.
const EigenTolerance = 1e-6

// Eigenvalue is one distinct eigenvalue with its multiplicities.
type Eigenvalue struct {
	Value     complex128
	Algebraic int // multiplicity as a root of the characteristic polynomial
	Geometric int // dim ker(A − λI); 0 when Value is not real (not computed)
	// Vectors is a basis of ker(A − λI) read from its RREF: one vector per free
	// column, holding 1 there and 0 at the other free columns. Nil when Value is
	// not real.
	Vectors [][]float64
}

// IsReal reports whether the imaginary part is negligible.
func (e Eigenvalue) IsReal() bool {
	return math.Abs(imag(e.Value)) <= EigenTolerance*math.Max(1, cmplx.Abs(e.Value))
}

// Spectrum is the result of Eigen.
type Spectrum struct {
	// Values holds distinct eigenvalues sorted by real part, then imaginary part.
	Values []Eigenvalue
	// Real reports whether every eigenvalue is real.
	Real bool
	// Diagonalizable is decided only for real spectra: true when every
	// eigenvalue's geometric multiplicity equals its algebraic multiplicity.
	Diagonalizable bool
}

// All returns the eigenvalues repeated by algebraic multiplicity, in order.
func (s *Spectrum) All() []complex128 {
	var out []complex128
	for _, ev := range s.Values {
		for k := 0; k < ev.Algebraic; k++ {
			out = append(out, ev.Value)
		}
	}

	return out
}

// Eigen computes the eigenvalues of a square matrix with their algebraic and
// geometric multiplicities.
//
// Implementation:
//   - Stage 1: Validate square; convert to gonum and factorize (values only).
//   - Stage 2: Sort and cluster values within EigenTolerance; the cluster mean
//     is reported, the cluster size is the algebraic multiplicity.
//   - Stage 3: For real eigenvalues, reduce A − λI with the Float backend and
//     EigenTolerance; its kernel basis gives the eigenvectors and the geometric
//     multiplicity n − rank(A − λI).
//
// Behavior highlights:
//   - Eigenvectors are returned for any real eigenvalue, symmetric or not; they
//     are not normalized (see EigenSym for an orthonormal set).
//   - A defective matrix keeps fewer eigenvectors than its algebraic
//     multiplicity; no Jordan chains are computed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
func Eigen[E any](f field.Field[E], m *Dense[E]) (*Spectrum, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := m.r
	if n == 0 {
		return &Spectrum{Real: true, Diagonalizable: true}, nil
	}
	g, err := ToGonum(f, m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	raw := eig.Values(nil)
	slices.SortFunc(raw, func(a, b complex128) int {
		if c := cmp.Compare(real(a), real(b)); c != 0 {
			return c
		}
		return cmp.Compare(imag(a), imag(b))
	})

	spec := &Spectrum{Values: clusterEigenvalues(raw), Real: true}
	for _, ev := range spec.Values {
		if !ev.IsReal() {
			spec.Real = false
		}
	}

	fl := field.Float{Tol: EigenTolerance}
	a := FromGonum(g)
	o := NewOptions(WithScale(MaxMagnitude[float64](fl, a)))
	spec.Diagonalizable = spec.Real
	for k := range spec.Values {
		ev := &spec.Values[k]
		if !ev.IsReal() {
			continue
		}
		ev.Value = complex(real(ev.Value), 0)
		shifted := a.Clone()
		for i := 0; i < n; i++ {
			shifted.set(i, i, shifted.at(i, i)-real(ev.Value))
		}
		pivots := eliminate[float64](fl, shifted, true, o)
		ev.Vectors = kernelBasis(shifted, pivots)
		ev.Geometric = len(ev.Vectors)
		if ev.Geometric != ev.Algebraic {
			spec.Diagonalizable = false
		}
	}

	return spec, nil
}

// kernelBasis reads ker(w) off w in RREF with the given pivot columns.
func kernelBasis(w *Dense[float64], pivots []int) [][]float64 {
	var basis [][]float64
	next := 0
	for fc := 0; fc < w.c; fc++ {
		if next < len(pivots) && pivots[next] == fc {
			next++
			continue
		}
		v := make([]float64, w.c)
		v[fc] = 1
		for i, pc := range pivots {
			v[pc] = -w.at(i, fc)
		}
		basis = append(basis, v)
	}

	return basis
}

// clusterEigenvalues merges sorted neighbours closer than EigenTolerance (relative).
func clusterEigenvalues(sorted []complex128) []Eigenvalue {
	var out []Eigenvalue
	var sum complex128
	for _, v := range sorted {
		if len(out) > 0 {
			last := &out[len(out)-1]
			mean := sum / complex(float64(last.Algebraic), 0)
			if cmplx.Abs(v-mean) <= EigenTolerance*math.Max(1, cmplx.Abs(mean)) {
				last.Algebraic++
				sum += v
				last.Value = sum / complex(float64(last.Algebraic), 0)
				continue
			}
		}
		out = append(out, Eigenvalue{Value: v, Algebraic: 1})
		sum = v
	}

	return out
}

// EigenSym computes eigenvalues (ascending) and orthonormal eigenvectors (as
// columns) of a symmetric matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed.
func EigenSym[E any](f field.Field[E], m *Dense[E]) ([]float64, *Dense[float64], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	sym, err := IsSymmetric(f, m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	if !sym {
		return nil, nil, matrixErrorf(opEigenSym, ErrAsymmetry)
	}
	n := m.r
	if n == 0 {
		return nil, &Dense[float64]{}, nil
	}
	buf := make([]float64, n*n)
	for idx, v := range m.data {
		buf[idx] = f.Float64(v)
	}
	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, buf), true); !ok {
		return nil, nil, matrixErrorf(opEigenSym, ErrEigenFailed)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return es.Values(nil), FromGonum(&vecs), nil
}
