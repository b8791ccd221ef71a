// Package render turns matrices and linsys results into console text.
//
// Matrices are drawn with tall brackets and right-aligned columns:
//
//	⎡        1         0       192 ⎤
//	⎢        0         1       157 ⎥
//	⎣        0         0         0 ⎦
//
// Cells are fractions by default. Exact values print exactly; float values are
// approximated by the closest fraction with a bounded denominator, which is a
// display aid and may not equal the float. Options.Decimal switches to
// six significant digits.
//
// Headings and the status line are styled with lipgloss through a renderer
// bound to the destination writer, so output to files and pipes stays plain.
package render
