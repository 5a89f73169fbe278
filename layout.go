// layout.go re-exports the solver from internal/layout.
// Any changes to internal/layout exported API must be mirrored here.
package tablelayout

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-tablelayout/internal/layout"
)

// Size is a width/height pair in layout units.
type Size = layout.Size

// SizeGrouping combines the minimum, maximum and preferred sizes of a cell.
type SizeGrouping = layout.SizeGrouping

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// CellFlags is a set of placement directives for a cell.
type CellFlags = layout.CellFlags

const (
	ExpandHorizontal       = layout.ExpandHorizontal
	ExpandVertical         = layout.ExpandVertical
	FillHorizontal         = layout.FillHorizontal
	FillVertical           = layout.FillVertical
	AnchorTop              = layout.AnchorTop
	AnchorBottom           = layout.AnchorBottom
	AnchorLeft             = layout.AnchorLeft
	AnchorRight            = layout.AnchorRight
	AnchorHorizontalCenter = layout.AnchorHorizontalCenter
	AnchorVerticalCenter   = layout.AnchorVerticalCenter
	Uniform                = layout.Uniform

	Expand       = layout.Expand
	Fill         = layout.Fill
	AnchorCenter = layout.AnchorCenter
)

// PositionFunc receives the final rectangle of a cell.
type PositionFunc = layout.PositionFunc

// CellProperties is the layout contract of one cell.
type CellProperties = layout.CellProperties

// Defaults holds the column, row and global cell templates of a table.
type Defaults = layout.Defaults

// OpKind distinguishes cells from row breaks.
type OpKind = layout.OpKind

const (
	OpCell     = layout.OpCell
	OpRowBreak = layout.OpRowBreak
)

// LayoutOp is one entry of a table's operation list.
type LayoutOp = layout.LayoutOp

// Table is an append-only table layout description.
type Table = layout.Table

// Result describes a completed solve.
type Result = layout.Result

// ErrOverConstrained reports that minimum sizes exceed the target area.
var ErrOverConstrained = layout.ErrOverConstrained

// Unbounded is the default maximum extent of a cell.
var Unbounded = layout.Unbounded

// NewTable creates an empty table with factory defaults.
func NewTable() *Table {
	return layout.NewTable()
}

// NewCell returns cell properties with default sizes and a span of one.
func NewCell() CellProperties {
	return layout.NewCell()
}

// DefaultSizeGrouping returns zero minimum and preferred sizes with an
// unbounded maximum.
func DefaultSizeGrouping() SizeGrouping {
	return layout.DefaultSizeGrouping()
}

// JoinSizeGroupings aggregates two groupings sharing a track.
func JoinSizeGroupings(a, b SizeGrouping) SizeGrouping {
	return layout.Join(a, b)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// ParseCellFlag resolves a flag by its kebab-case name.
func ParseCellFlag(name string) (CellFlags, bool) {
	return layout.ParseCellFlag(name)
}

// SetLogger configures the solver's diagnostic logger. Pass nil to silence it.
func SetLogger(l *zap.Logger) {
	layout.SetLogger(l)
}
