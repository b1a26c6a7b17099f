// Package layout is the fixed-width text layout engine.
//
// Everything is measured in grid cells, one rune per cell, the way a
// monospace thermal printer prints. The package has no side effects:
//
//   - Wrap breaks a paragraph into lines with greedy word wrap
//   - FormatLine and Fit pad (or truncate) one line to a column width
//   - AlignVertical pads a column's lines to a row height
//   - Cell and Row compose columns into multi-line rows
//
// Widths that do not add up (explicit widths wider than the page, or a
// flexible share with a remainder) are not errors; the row just comes out
// wider or narrower than the page.
package layout
