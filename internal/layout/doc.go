// Package layout implements a constraint-based table layout solver.
//
// A [Table] holds an append-only list of cells and row breaks. Each cell
// carries a [SizeGrouping] (minimum, preferred and maximum size), a set of
// [CellFlags] controlling expansion, fill and anchoring, a column span, and an
// optional positioning callback. [Table.Solve] negotiates column widths and
// row heights against a target area and reports the final rectangle of every
// cell through its callback, in declaration order.
//
// Horizontal and vertical negotiation are independent: columns are reconciled
// against the target width, rows against the target height, using the same
// surplus/deficit distribution. Types are re-exported through the root
// tablelayout package for public consumption.
package layout
