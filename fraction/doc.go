// Package fraction formats and parses exact rationals and approximates
// floating-point values by fractions with a bounded denominator.
//
// Format and Parse are exact inverses. Approximate is not: it picks the
// closest p/q with q <= maxDenominator to the binary value of a float64, so
// 0.1 becomes 1/10 although the float is not exactly one tenth.
package fraction
