package layout

import "math"

// Unbounded is the default maximum extent of a cell along either axis.
var Unbounded = float32(math.Inf(1))

// Size is a width/height pair in layout units.
type Size struct {
	Width  float32
	Height float32
}

// JoinMax returns the component-wise maximum of a and b.
func JoinMax(a, b Size) Size {
	return Size{Width: max(a.Width, b.Width), Height: max(a.Height, b.Height)}
}

// JoinMin returns the component-wise minimum of a and b.
func JoinMin(a, b Size) Size {
	return Size{Width: min(a.Width, b.Width), Height: min(a.Height, b.Height)}
}

// Spread divides both components by divisions.
func (s Size) Spread(divisions float32) Size {
	return Size{Width: s.Width / divisions, Height: s.Height / divisions}
}

// Within reports whether s fits strictly inside other.
func (s Size) Within(other Size) bool {
	return other.Width > s.Width && other.Height > s.Height
}

// SizeGrouping combines the minimum, preferred and maximum sizes of a cell
// or of an aggregated track.
//
// Minimum <= Preferred <= Maximum is expected component-wise but not
// enforced; the solver's arithmetic assumes it holds.
type SizeGrouping struct {
	Minimum   Size
	Maximum   Size
	Preferred Size
}

// DefaultSizeGrouping returns a grouping with zero minimum and preferred
// sizes and an unbounded maximum.
func DefaultSizeGrouping() SizeGrouping {
	return SizeGrouping{
		Maximum: Size{Width: Unbounded, Height: Unbounded},
	}
}

// Join aggregates two groupings that share a track: the larger minimum,
// the larger preferred and the smaller maximum win.
func Join(a, b SizeGrouping) SizeGrouping {
	return SizeGrouping{
		Minimum:   JoinMax(a.Minimum, b.Minimum),
		Preferred: JoinMax(a.Preferred, b.Preferred),
		Maximum:   JoinMin(a.Maximum, b.Maximum),
	}
}

// Spread divides every bound on both axes by divisions.
func (g SizeGrouping) Spread(divisions float32) SizeGrouping {
	return SizeGrouping{
		Minimum:   g.Minimum.Spread(divisions),
		Preferred: g.Preferred.Spread(divisions),
		Maximum:   g.Maximum.Spread(divisions),
	}
}

// SpreadColumns returns the share of g contributed to each of span columns.
// Only widths are divided; a column span splits a cell horizontally.
func (g SizeGrouping) SpreadColumns(span int) SizeGrouping {
	d := float32(span)
	return SizeGrouping{
		Minimum:   Size{Width: g.Minimum.Width / d, Height: g.Minimum.Height},
		Preferred: Size{Width: g.Preferred.Width / d, Height: g.Preferred.Height},
		Maximum:   Size{Width: g.Maximum.Width / d, Height: g.Maximum.Height},
	}
}

// BoxFit fits a box described by g into area according to flags and returns
// the box relative to the area's top-left corner.
//
// Fill flags let the box grow up to its maximum; otherwise it stays at its
// preferred size. Either way it never exceeds the area. AnchorRight and
// AnchorBottom take precedence over the center anchors; with no anchor the
// box sits at the top-left.
func (g SizeGrouping) BoxFit(area Size, flags CellFlags) Rect {
	var w, h float32
	if flags.Has(FillHorizontal) {
		w = min(g.Maximum.Width, area.Width)
	} else {
		w = min(g.Preferred.Width, area.Width)
	}
	if flags.Has(FillVertical) {
		h = min(g.Maximum.Height, area.Height)
	} else {
		h = min(g.Preferred.Height, area.Height)
	}

	var x float32
	switch {
	case flags.Has(AnchorRight):
		x = area.Width - w
	case flags.Has(AnchorHorizontalCenter):
		x = area.Width/2 - w/2
	}

	var y float32
	switch {
	case flags.Has(AnchorBottom):
		y = area.Height - h
	case flags.Has(AnchorVerticalCenter):
		y = area.Height/2 - h/2
	}

	return Rect{X: x, Y: y, Width: w, Height: h}
}
