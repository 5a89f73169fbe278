// Package tablelayout solves table layouts: rows of cells with minimum,
// preferred and maximum sizes, expansion, fill and anchor flags, and column
// spans, negotiated against a target area.
//
// Users import this single package for the complete public API:
//
//	t := tablelayout.NewTable()
//	t.AddCell(tablelayout.NewCell().
//		PreferredSize(tablelayout.Size{Width: 64, Height: 64}).
//		AnchorRight().
//		Callback(func(x, y, w, h float32) { fmt.Println(x, y, w, h) }))
//	t.AddRow()
//	t.Solve(320, 240)
package tablelayout
