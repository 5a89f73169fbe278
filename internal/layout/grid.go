package layout

// track is one row or column during a solve: its aggregated size along the
// axis being negotiated and whether any of its cells asked for expansion.
type track struct {
	preferred float32
	minimum   float32
	expand    bool
}

// grid holds the per-track working state of a single solve.
type grid struct {
	rows    []SizeGrouping
	cols    []SizeGrouping
	rowGrow []bool
	colGrow []bool
}

// buildGrid aggregates the size constraints of every cell into its row and
// columns. Cells with a zero span are skipped entirely.
func buildGrid(ops []LayoutOp, rows, cols int) grid {
	g := grid{
		rows:    make([]SizeGrouping, rows),
		cols:    make([]SizeGrouping, cols),
		rowGrow: make([]bool, rows),
		colGrow: make([]bool, cols),
	}
	for i := range g.rows {
		g.rows[i] = DefaultSizeGrouping()
	}
	for i := range g.cols {
		g.cols[i] = DefaultSizeGrouping()
	}

	row, col := 0, 0
	for _, op := range ops {
		if op.Kind == OpRowBreak {
			row++
			col = 0
			continue
		}

		cell := op.Cell
		if cell.Colspan == 0 {
			continue
		}

		g.rows[row] = Join(g.rows[row], cell.Size)
		if cell.Flags.Has(ExpandVertical) {
			g.rowGrow[row] = true
		}

		share := cell.Size.SpreadColumns(cell.Colspan)
		for range cell.Colspan {
			g.cols[col] = Join(g.cols[col], share)
			if cell.Flags.Has(ExpandHorizontal) {
				g.colGrow[col] = true
			}
			col++
		}
	}
	return g
}

// columnTracks returns the width view of the columns.
func (g grid) columnTracks() []track {
	tracks := make([]track, len(g.cols))
	for i, c := range g.cols {
		tracks[i] = track{preferred: c.Preferred.Width, minimum: c.Minimum.Width, expand: g.colGrow[i]}
	}
	return tracks
}

// rowTracks returns the height view of the rows.
func (g grid) rowTracks() []track {
	tracks := make([]track, len(g.rows))
	for i, r := range g.rows {
		tracks[i] = track{preferred: r.Preferred.Height, minimum: r.Minimum.Height, expand: g.rowGrow[i]}
	}
	return tracks
}
