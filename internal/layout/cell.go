package layout

// PositionFunc receives the final rectangle of a cell: its x and y
// coordinates followed by its width and height.
type PositionFunc func(x, y, width, height float32)

// CellProperties is the full layout contract of one cell.
//
// The positioning callback is owned by the cell that registered it. Clone
// never carries it over, so templates used for defaults cannot leak a
// callback into other cells.
type CellProperties struct {
	// Size holds the desired sizes for this cell.
	Size SizeGrouping
	// Flags holds the placement directives for this cell.
	Flags CellFlags
	// Colspan is the number of columns the cell occupies. Zero makes the
	// cell inert: it takes no column and does not influence sizing.
	Colspan int

	callback PositionFunc
}

// NewCell returns properties with the default size grouping, no flags and a
// column span of one.
func NewCell() CellProperties {
	return CellProperties{
		Size:    DefaultSizeGrouping(),
		Colspan: 1,
	}
}

// Clone returns a copy of p without its callback.
func (p CellProperties) Clone() CellProperties {
	p.callback = nil
	return p
}

// HasCallback reports whether a positioning callback is registered.
func (p CellProperties) HasCallback() bool {
	return p.callback != nil
}

func (p CellProperties) MinimumSize(minimum Size) CellProperties {
	p.Size.Minimum = minimum
	return p
}

func (p CellProperties) MaximumSize(maximum Size) CellProperties {
	p.Size.Maximum = maximum
	return p
}

func (p CellProperties) PreferredSize(preferred Size) CellProperties {
	p.Size.Preferred = preferred
	return p
}

// WithFlags adds flags to the cell.
func (p CellProperties) WithFlags(flags CellFlags) CellProperties {
	p.Flags |= flags
	return p
}

func (p CellProperties) Expand() CellProperties           { return p.WithFlags(Expand) }
func (p CellProperties) ExpandHorizontal() CellProperties { return p.WithFlags(ExpandHorizontal) }
func (p CellProperties) ExpandVertical() CellProperties   { return p.WithFlags(ExpandVertical) }
func (p CellProperties) Fill() CellProperties             { return p.WithFlags(Fill) }
func (p CellProperties) FillHorizontal() CellProperties   { return p.WithFlags(FillHorizontal) }
func (p CellProperties) FillVertical() CellProperties     { return p.WithFlags(FillVertical) }
func (p CellProperties) AnchorTop() CellProperties        { return p.WithFlags(AnchorTop) }
func (p CellProperties) AnchorBottom() CellProperties     { return p.WithFlags(AnchorBottom) }
func (p CellProperties) AnchorLeft() CellProperties       { return p.WithFlags(AnchorLeft) }
func (p CellProperties) AnchorRight() CellProperties      { return p.WithFlags(AnchorRight) }
func (p CellProperties) AnchorCenter() CellProperties     { return p.WithFlags(AnchorCenter) }
func (p CellProperties) Uniform() CellProperties          { return p.WithFlags(Uniform) }

func (p CellProperties) AnchorHorizontalCenter() CellProperties {
	return p.WithFlags(AnchorHorizontalCenter)
}

func (p CellProperties) AnchorVerticalCenter() CellProperties {
	return p.WithFlags(AnchorVerticalCenter)
}

// Span sets the number of columns the cell occupies.
func (p CellProperties) Span(span int) CellProperties {
	p.Colspan = span
	return p
}

// Callback registers fn to receive the cell's final rectangle.
func (p CellProperties) Callback(fn PositionFunc) CellProperties {
	p.callback = fn
	return p
}
