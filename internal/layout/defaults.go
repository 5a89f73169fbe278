package layout

// Defaults holds the cell templates a table offers to new cells.
// Lookup priority is column, then row, then the global cell template.
type Defaults struct {
	Cell    CellProperties
	Rows    map[int]CellProperties
	Columns map[int]CellProperties
}

// NewDefaults returns factory defaults: NewCell as the global template and
// no row or column overrides.
func NewDefaults() Defaults {
	return Defaults{
		Cell:    NewCell(),
		Rows:    make(map[int]CellProperties),
		Columns: make(map[int]CellProperties),
	}
}

// Lookup returns a callback-free copy of the template that applies to a cell
// inserted at (row, column).
func (d Defaults) Lookup(row, column int) CellProperties {
	if p, ok := d.Columns[column]; ok {
		return p.Clone()
	}
	if p, ok := d.Rows[row]; ok {
		return p.Clone()
	}
	return d.Cell.Clone()
}
