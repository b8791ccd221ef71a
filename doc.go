// Package lvlinalg is a small linear-algebra toolkit built around one question:
// does A·x = b have no solution, exactly one, or infinitely many, and what are
// they?
//
// 🚀 What is in lvlinalg?
//
//	• field:    scalar backends, exact (*big.Rat) and tolerance-aware float64
//	• matrix:   generic dense matrices, RREF/REF, rank, determinant, inverse,
//	            adjugate, symmetric parts, vector operations, eigen analysis
//	• linsys:   the system analyzer (classification, particular solution,
//	            homogeneous basis, substitution checks)
//	• fraction: exact fraction text and bounded-denominator approximation
//	• render:   bracketed matrices and the full analysis report
//	• config:   YAML system files and built-in presets
//	• cmd/lvlinalg: the command-line front end
//
// ✨ Exact first:
//
//   - Integer and fractional input goes through field.Rational and every rank,
//     pivot and solution is exact.
//   - Measured data goes through field.Float; values within the tolerance of
//     zero count as zero, which is documented behavior, not an error.
//
// Quick example:
//
//	f := field.Rational{}
//	a, _ := matrix.FromInts[*big.Rat](f, [][]int64{{1, -2}, {2, -1}})
//	res, _ := linsys.Analyze(f, a, []*big.Rat{big.NewRat(3, 1), new(big.Rat)})
//	x, _ := res.Unique() // [-1 -2]
//
//	go install github.com/katalvlaran/lvlinalg/cmd/lvlinalg@latest
package lvlinalg
