// Package render turns matrices into something a person can look at.
//
//   - Text writes the fixed-width debug dump: every element as %3.0f, one
//     row per line, fields separated by a single space.
//   - Heatmap draws the matrix as a gonum/plot heat map (PNG, SVG, PDF, ...,
//     chosen by the file extension) with row 0 at the top.
//
// Both are read-only consumers of matrix.Matrix and never modify their input.
package render
