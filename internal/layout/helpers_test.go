package layout

// placement is one recorded callback invocation.
type placement struct {
	ID   string
	Rect Rect
}

// recorder collects callback invocations in order.
type recorder struct {
	got []placement
}

func (r *recorder) cb(id string) PositionFunc {
	return func(x, y, w, h float32) {
		r.got = append(r.got, placement{ID: id, Rect: NewRect(x, y, w, h)})
	}
}

func (r *recorder) byID(id string) (Rect, bool) {
	for _, p := range r.got {
		if p.ID == id {
			return p.Rect, true
		}
	}
	return Rect{}, false
}

func sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// buildExpanding builds the three-cell row over a colspan-3 row used
// throughout the solver tests.
func buildExpanding(rec *recorder) *Table {
	t := NewTable()
	t.AddCell(NewCell().Callback(rec.cb("a")).
		AnchorRight().AnchorBottom().PreferredSize(sz(64, 64)))
	t.AddCell(NewCell().Callback(rec.cb("b")).
		AnchorTop().AnchorLeft().ExpandHorizontal().PreferredSize(sz(64, 64)))
	t.AddCell(NewCell().Callback(rec.cb("c")).
		AnchorRight().ExpandHorizontal().FillHorizontal().PreferredSize(sz(64, 64)))
	t.AddRow()
	t.AddCell(NewCell().Callback(rec.cb("d")).
		Span(3).ExpandVertical().AnchorBottom().FillHorizontal().PreferredSize(sz(64, 64)))
	return t
}
