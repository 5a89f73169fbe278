package layout

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrOverConstrained reports that the minimum sizes along an axis exceed the
// space available. The layout is still produced; it overflows the target.
var ErrOverConstrained = errors.New("layout is over-constrained")

// Result describes a completed solve.
type Result struct {
	Rows    int
	Columns int
	// Placed is the number of callbacks invoked.
	Placed int
	// Overflow is the space, per axis, by which the solved layout still
	// exceeds the target after every track was shrunk to its minimum.
	Overflow Size
}

// OverConstrained reports whether either axis overflowed.
func (r Result) OverConstrained() bool {
	return r.Overflow.Width > 0 || r.Overflow.Height > 0
}

// Err returns an error wrapping ErrOverConstrained when the layout
// overflowed its target, and nil otherwise.
func (r Result) Err() error {
	if !r.OverConstrained() {
		return nil
	}
	return fmt.Errorf("%w: overflow %gx%g", ErrOverConstrained, r.Overflow.Width, r.Overflow.Height)
}

// Solve computes the rectangle of every cell for a target area of width by
// height and delivers it to the cell's callback, in declaration order.
//
// Solve always produces a layout. A table without columns returns at once
// without invoking anything. Callbacks run synchronously and must not modify
// the table being solved.
func (t *Table) Solve(width, height float32) Result {
	rows, cols := t.Dimensions()
	if cols == 0 {
		return Result{}
	}

	log := Logger()
	log.Debug("imposing matrix", zap.Int("rows", rows), zap.Int("cols", cols),
		zap.Float32("width", width), zap.Float32("height", height))

	g := buildGrid(t.ops, rows, cols)

	colTracks := g.columnTracks()
	colResult := negotiate(colTracks, width)
	logNegotiation(log, "width", colResult)

	rowTracks := g.rowTracks()
	rowResult := negotiate(rowTracks, height)
	logNegotiation(log, "height", rowResult)

	res := Result{
		Rows:     rows,
		Columns:  cols,
		Overflow: Size{Width: colResult.overflow, Height: rowResult.overflow},
	}
	res.Placed = place(t.ops, colTracks, rowTracks)
	return res
}

// place walks the operations a second time, fitting each cell into its
// negotiated track area. It returns the number of callbacks invoked.
func place(ops []LayoutOp, cols, rows []track) int {
	var x, y float32
	row, col := 0, 0
	placed := 0

	for _, op := range ops {
		if op.Kind == OpRowBreak {
			x = 0
			y += rows[row].preferred
			row++
			col = 0
			continue
		}

		cell := op.Cell
		if cell.Colspan == 0 {
			// Inert cells see an empty track at the cursor.
			if cell.callback != nil {
				cell.callback(x, y, 0, 0)
				placed++
			}
			continue
		}

		var width float32
		for range cell.Colspan {
			width += cols[col].preferred
			col++
		}
		area := Size{Width: width, Height: rows[row].preferred}
		box := cell.Size.BoxFit(area, cell.Flags)

		if cell.callback != nil {
			cell.callback(x+box.X, y+box.Y, box.Width, box.Height)
			placed++
		}
		x += width
	}
	return placed
}

func logNegotiation(log *zap.Logger, axis string, n negotiation) {
	switch {
	case n.error > 0 && n.expanding > 0:
		log.Debug("expanding tracks", zap.String("axis", axis),
			zap.Float32("surplus", n.error), zap.Int("tracks", n.expanding))
	case n.error > 0:
		log.Debug("surplus unused", zap.String("axis", axis), zap.Float32("surplus", n.error))
	case n.error < 0:
		log.Debug("shrinking tracks", zap.String("axis", axis),
			zap.Float32("deficit", -n.error), zap.Float32("slack", n.slack))
	}
	if n.overflow > 0 {
		log.Warn("layout over-constrained", zap.String("axis", axis),
			zap.Float32("deficit", -n.error), zap.Float32("slack", n.slack),
			zap.Float32("overflow", n.overflow))
	}
}
