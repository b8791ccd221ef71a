// Package linsys analyzes linear systems A·x = b.
//
// Analyze reduces the coefficient matrix and the augmented matrix [A | b] to
// reduced row echelon form, compares their ranks and classifies the system:
//
//	rank(A) <  rank([A|b])        INCONSISTENT, no solution
//	rank(A) == rank([A|b]) == n   UNIQUE
//	rank(A) == rank([A|b]) <  n   INFINITE
//
// For a UNIQUE system the solution is read from the last column of the reduced
// augmented matrix. For an INFINITE one every free variable is set to zero to
// obtain a particular solution, and each free column contributes one basis
// vector of the homogeneous solution space, so that every solution is
//
//	x = Particular + c1·Basis[0] + c2·Basis[1] + ...
//
// The analyzer is generic over the scalar backend of the field package. Exact
// input should go through field.Rational: ranks and pivots are then exact.
// With field.Float values within the backend tolerance (relative to the largest
// entry of [A|b]) count as zero, so a near-singular system may be classified
// differently than exact arithmetic would classify it. That is an accepted
// approximation, not an error.
//
// Analysis has no side effects. Printing a Result is the job of the render
// package.
package linsys
