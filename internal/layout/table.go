package layout

// OpKind distinguishes the entries of a table's operation list.
type OpKind uint8

const (
	OpCell     OpKind = iota // Inserts a cell
	OpRowBreak               // Starts a new row
)

// LayoutOp is one instruction in a table: a cell or a row break.
// Cell is nil for row breaks.
type LayoutOp struct {
	Kind OpKind
	Cell *CellProperties
}

// Table is an append-only table layout description. The zero value is an
// empty table with factory defaults.
//
// A Table is not safe for concurrent use. Independent tables can be solved
// from different goroutines.
type Table struct {
	defaults Defaults
	// hasDefaults is false until defaults are installed, which lets the
	// zero value behave like NewTable.
	hasDefaults bool
	ops         []LayoutOp

	row    int
	column int
}

// NewTable creates an empty table with factory defaults.
func NewTable() *Table {
	return &Table{defaults: NewDefaults(), hasDefaults: true}
}

// AddCell appends a cell to the current row and advances the cursor by its
// column span. A negative span is treated as zero.
func (t *Table) AddCell(p CellProperties) *Table {
	if p.Colspan < 0 {
		p.Colspan = 0
	}
	t.column += p.Colspan
	t.ops = append(t.ops, LayoutOp{Kind: OpCell, Cell: &p})
	return t
}

// AddRow appends a row break.
func (t *Table) AddRow() *Table {
	t.ops = append(t.ops, LayoutOp{Kind: OpRowBreak})
	t.row++
	t.column = 0
	return t
}

// Clear removes all cells and rows. Defaults are kept.
func (t *Table) Clear() {
	t.row = 0
	t.column = 0
	clear(t.ops)
	t.ops = t.ops[:0]
}

// FullClear removes all cells and rows and restores factory defaults.
func (t *Table) FullClear() {
	t.Clear()
	t.defaults = NewDefaults()
	t.hasDefaults = true
}

// Ops returns the operation list. The slice must not be modified.
func (t *Table) Ops() []LayoutOp {
	return t.ops
}

// Len returns the number of operations.
func (t *Table) Len() int {
	return len(t.ops)
}

// Cursor returns the row and column the next cell would land on.
func (t *Table) Cursor() (row, column int) {
	return t.row, t.column
}

// Dimensions returns the number of rows and columns described by the table.
// A trailing row without a break counts as a row only if it has columns.
func (t *Table) Dimensions() (rows, cols int) {
	current := 0
	for _, op := range t.ops {
		switch op.Kind {
		case OpCell:
			current += op.Cell.Colspan
		case OpRowBreak:
			cols = max(cols, current)
			current = 0
			rows++
		}
	}
	if current > 0 {
		cols = max(cols, current)
		rows++
	}
	return rows, cols
}

// Defaults returns the table's default templates.
func (t *Table) Defaults() Defaults {
	t.initDefaults()
	return t.defaults
}

// SetCellDefaults replaces the global cell template.
func (t *Table) SetCellDefaults(p CellProperties) {
	t.initDefaults()
	t.defaults.Cell = p.Clone()
}

// SetRowDefaults sets the template for cells inserted into row.
func (t *Table) SetRowDefaults(row int, p CellProperties) {
	t.initDefaults()
	t.defaults.Rows[row] = p.Clone()
}

// SetColumnDefaults sets the template for cells inserted at column.
func (t *Table) SetColumnDefaults(column int, p CellProperties) {
	t.initDefaults()
	t.defaults.Columns[column] = p.Clone()
}

// WithDefaults returns the template for the next cell position, looked up by
// column, then row, then the global template. The result only applies if it
// is inserted next and the defaults are not changed in between.
func (t *Table) WithDefaults() CellProperties {
	t.initDefaults()
	return t.defaults.Lookup(t.row, t.column)
}

func (t *Table) initDefaults() {
	if !t.hasDefaults {
		t.defaults = NewDefaults()
		t.hasDefaults = true
	}
}
