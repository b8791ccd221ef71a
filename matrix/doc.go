// Package matrix provides a generic dense matrix and the linear-algebra
// kernels lvlinalg is built from.
//
// 🚀 What is in here?
//
//	Dense[E] is a row-major rows×cols grid over any scalar backend from the
//	field package (exact *big.Rat or tolerance-aware float64). Every kernel
//	takes the backend as its first argument:
//
//		var q field.Rational
//		a, _ := matrix.FromRows([][]*big.Rat{...})
//		rf, _ := matrix.RREF(q, a)
//		fmt.Println(rf.Pivots, rf.Rank())
//
// ✨ Kernels:
//   - element-wise: Add, Sub, Scale, Equal, IsSymmetric, SymmetricParts
//   - products: Mul, MulVec, Transpose, Augment
//   - elimination: RREF, REF, Rank, Determinant, Inverse
//   - cofactors: Minor, Cofactor, Adjugate
//   - vectors: Dot, LinearCombination, Project, Norm, Distance, Angle
//   - spectra (gonum-backed, float): Eigen, EigenSym
//
// Conventions:
//   - Inputs are never mutated; every kernel returns freshly allocated results.
//   - Failures are sentinel errors (errors.go) wrapped with the operation name,
//     e.g. "Mul: matrix: dimension mismatch"; match them with errors.Is.
//   - Zero-row and zero-column matrices are legal, so a system with no
//     equations is still an m×n matrix with m = 0.
//   - Loop orders are fixed; results are deterministic for a given input.
package matrix
