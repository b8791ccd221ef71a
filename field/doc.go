// Package field defines the scalar arithmetic that every matrix kernel in
// lvlinalg is written against.
//
// Two interchangeable backends are provided:
//
//   - Rational: exact arithmetic over *big.Rat. Ranks, pivots and solutions
//     computed with it are exact; nothing is ever rounded.
//   - Float: float64 arithmetic with a tolerance policy. Values whose
//     magnitude is within Tol·max(1, scale) of zero are treated as zero when
//     detecting pivots and ranks.
//
// Callers select the backend according to their input: integer or fractional
// literals go through Rational, measured or already-rounded data goes through
// Float. Both satisfy Field[E], so algorithms are written once:
//
//	func Trace[E any](f field.Field[E], diag []E) E {
//		acc := f.Zero()
//		for _, v := range diag {
//			acc = f.Add(acc, v)
//		}
//		return acc
//	}
//
// Backends are stateless values (Float only carries its tolerance) and never
// mutate their operands, so results may be shared freely between goroutines.
package field
