package layout

import (
	"fmt"
	"strings"
)

// CellFlags is a set of independent placement directives for a cell.
type CellFlags uint16

const (
	// ExpandHorizontal marks the cell's columns as wanting surplus width.
	ExpandHorizontal CellFlags = 1 << iota
	// ExpandVertical marks the cell's row as wanting surplus height.
	ExpandVertical
	// FillHorizontal grows the cell's box to its maximum width within the track.
	FillHorizontal
	// FillVertical grows the cell's box to its maximum height within the track.
	FillVertical
	// AnchorTop places the box at the top of its track (the default).
	AnchorTop
	// AnchorBottom places the box at the bottom of its track.
	AnchorBottom
	// AnchorLeft places the box at the left of its track (the default).
	AnchorLeft
	// AnchorRight places the box at the right of its track.
	AnchorRight
	// AnchorHorizontalCenter centers the box horizontally in its track.
	AnchorHorizontalCenter
	// AnchorVerticalCenter centers the box vertically in its track.
	AnchorVerticalCenter
	// Uniform is reserved for equal sizing across cells. The solver ignores it.
	Uniform
)

// Common unions.
const (
	Expand       = ExpandHorizontal | ExpandVertical
	Fill         = FillHorizontal | FillVertical
	AnchorCenter = AnchorHorizontalCenter | AnchorVerticalCenter
)

// flagNames lists every single flag in bit order with its document name.
var flagNames = []struct {
	flag CellFlags
	name string
}{
	{ExpandHorizontal, "expand-horizontal"},
	{ExpandVertical, "expand-vertical"},
	{FillHorizontal, "fill-horizontal"},
	{FillVertical, "fill-vertical"},
	{AnchorTop, "anchor-top"},
	{AnchorBottom, "anchor-bottom"},
	{AnchorLeft, "anchor-left"},
	{AnchorRight, "anchor-right"},
	{AnchorHorizontalCenter, "anchor-horizontal-center"},
	{AnchorVerticalCenter, "anchor-vertical-center"},
	{Uniform, "uniform"},
}

// Has reports whether every flag in other is set in f.
func (f CellFlags) Has(other CellFlags) bool {
	return f&other == other
}

// String returns the set flags joined by "|", or "none".
func (f CellFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	if rest := f &^ allFlags(); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

func allFlags() CellFlags {
	var all CellFlags
	for _, fn := range flagNames {
		all |= fn.flag
	}
	return all
}

// ParseCellFlag resolves a flag name such as "anchor-right" or the unions
// "expand", "fill" and "anchor-center". Matching ignores case, and
// underscores are accepted in place of dashes.
func ParseCellFlag(name string) (CellFlags, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	switch key {
	case "none":
		return 0, true
	case "expand":
		return Expand, true
	case "fill":
		return Fill, true
	case "anchor-center":
		return AnchorCenter, true
	}
	for _, fn := range flagNames {
		if fn.name == key {
			return fn.flag, true
		}
	}
	return 0, false
}
