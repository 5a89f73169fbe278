package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolve_ExpandingLayout(t *testing.T) {
	rec := &recorder{}
	tbl := buildExpanding(rec)

	res := tbl.Solve(320, 240)

	want := []placement{
		// Neither expand nor fill: packed at preferred width.
		{ID: "a", Rect: NewRect(0, 0, 64, 64)},
		// Expanding column grows to 128 but the box stays at its preferred size.
		{ID: "b", Rect: NewRect(64, 0, 64, 64)},
		// Expand and fill: the box takes the whole column.
		{ID: "c", Rect: NewRect(192, 0, 128, 64)},
		// The second row claims all vertical surplus; anchored to its bottom.
		{ID: "d", Rect: NewRect(0, 176, 320, 64)},
	}
	if diff := cmp.Diff(want, rec.got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if res.Rows != 2 || res.Columns != 3 || res.Placed != 4 {
		t.Errorf("Result = %+v, want 2 rows, 3 columns, 4 placed", res)
	}
	if res.OverConstrained() || res.Err() != nil {
		t.Errorf("Result = %+v, want no overflow", res)
	}
}

func TestSolve_ShrinkingLayout(t *testing.T) {
	rec := &recorder{}
	tbl := NewTable()
	tbl.AddCell(NewCell().Callback(rec.cb("a")).PreferredSize(sz(64, 64)))
	tbl.AddCell(NewCell().Callback(rec.cb("b")).PreferredSize(sz(64, 64)))
	tbl.AddRow()
	tbl.AddCell(NewCell().Callback(rec.cb("c")).Span(2).PreferredSize(sz(64, 64)))

	tbl.Solve(32, 32)

	want := []placement{
		{ID: "a", Rect: NewRect(0, 0, 16, 16)},
		{ID: "b", Rect: NewRect(16, 0, 16, 16)},
		{ID: "c", Rect: NewRect(0, 16, 32, 16)},
	}
	if diff := cmp.Diff(want, rec.got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve_CenteredLayout(t *testing.T) {
	rec := &recorder{}
	tbl := NewTable()
	tbl.AddCell(NewCell().Callback(rec.cb("a")).
		AnchorHorizontalCenter().AnchorVerticalCenter().Expand().PreferredSize(sz(32, 32)))

	tbl.Solve(64, 64)

	want := []placement{{ID: "a", Rect: NewRect(16, 16, 32, 32)}}
	if diff := cmp.Diff(want, rec.got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve_ProportionalShrink(t *testing.T) {
	rec := &recorder{}
	tbl := NewTable()
	tbl.AddCell(NewCell().Callback(rec.cb("a")).Fill().PreferredSize(sz(64, 10)))
	tbl.AddCell(NewCell().Callback(rec.cb("b")).Fill().MinimumSize(sz(32, 0)).PreferredSize(sz(64, 10)))

	res := tbl.Solve(32, 10)

	want := []placement{
		{ID: "a", Rect: NewRect(0, 0, 0, 10)},
		{ID: "b", Rect: NewRect(0, 0, 32, 10)},
	}
	if diff := cmp.Diff(want, rec.got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if res.OverConstrained() {
		t.Errorf("Overflow = %+v, want none", res.Overflow)
	}
}

func TestSolve_SurplusIsConserved(t *testing.T) {
	rec := &recorder{}
	tbl := NewTable()
	for _, id := range []string{"a", "b", "c"} {
		tbl.AddCell(NewCell().Callback(rec.cb(id)).Fill().PreferredSize(sz(40, 20)))
	}

	tbl.Solve(1000, 20)

	var total float32
	for _, p := range rec.got {
		total += p.Rect.Width
	}
	if total > 120 {
		t.Errorf("summed widths = %g, want <= 120 with no expanding column", total)
	}
	if last := rec.got[len(rec.got)-1].Rect; last.X != 80 {
		t.Errorf("last cell X = %g, want 80", last.X)
	}
}

func TestSolve_ZeroSpanCell(t *testing.T) {
	build := func(withGhost bool) (*Table, *recorder) {
		rec := &recorder{}
		tbl := NewTable()
		tbl.AddCell(NewCell().Callback(rec.cb("a")).PreferredSize(sz(20, 20)))
		if withGhost {
			tbl.AddCell(NewCell().Callback(rec.cb("ghost")).Span(0).Expand().Fill().PreferredSize(sz(500, 500)))
		}
		tbl.AddCell(NewCell().Callback(rec.cb("b")).ExpandHorizontal().PreferredSize(sz(20, 20)))
		tbl.AddRow()
		tbl.AddCell(NewCell().Callback(rec.cb("c")).Span(2).AnchorRight().PreferredSize(sz(30, 10)))
		return tbl, rec
	}

	plain, plainRec := build(false)
	ghosted, ghostRec := build(true)

	_, plainCols := plain.Dimensions()
	_, ghostCols := ghosted.Dimensions()
	if plainCols != ghostCols {
		t.Errorf("columns = %d with ghost, want %d", ghostCols, plainCols)
	}

	plainRes := plain.Solve(100, 100)
	ghostRes := ghosted.Solve(100, 100)

	ghost, ok := ghostRec.byID("ghost")
	if !ok {
		t.Fatal("ghost callback did not fire")
	}
	// The ghost sees an empty track at the cursor right after cell a.
	if want := NewRect(20, 0, 0, 0); ghost != want {
		t.Errorf("ghost = %+v, want %+v", ghost, want)
	}
	if ghostRes.Placed != plainRes.Placed+1 {
		t.Errorf("Placed = %d, want %d", ghostRes.Placed, plainRes.Placed+1)
	}

	var others []placement
	for _, p := range ghostRec.got {
		if p.ID != "ghost" {
			others = append(others, p)
		}
	}
	if diff := cmp.Diff(plainRec.got, others); diff != "" {
		t.Errorf("ghost changed other placements (-want +got):\n%s", diff)
	}
}

func TestSolve_EmptyTable(t *testing.T) {
	type tc struct {
		build func(*Table, *recorder)
	}

	tests := map[string]tc{
		"no operations": {build: func(*Table, *recorder) {}},
		"only rows":     {build: func(t *Table, _ *recorder) { t.AddRow().AddRow() }},
		"only ghosts": {build: func(t *Table, r *recorder) {
			t.AddCell(NewCell().Span(0).Callback(r.cb("ghost")))
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			tbl := NewTable()
			tt.build(tbl, rec)

			res := tbl.Solve(100, 100)
			if res != (Result{}) {
				t.Errorf("Solve() = %+v, want zero Result", res)
			}
			if len(rec.got) != 0 {
				t.Errorf("callbacks fired: %+v", rec.got)
			}
		})
	}
}

func TestSolve_CellWithoutCallbackReservesSpace(t *testing.T) {
	rec := &recorder{}
	tbl := NewTable()
	tbl.AddCell(NewCell().PreferredSize(sz(30, 10)))
	tbl.AddCell(NewCell().Callback(rec.cb("b")).PreferredSize(sz(30, 10)))

	res := tbl.Solve(100, 100)

	want := []placement{{ID: "b", Rect: NewRect(30, 0, 30, 10)}}
	if diff := cmp.Diff(want, rec.got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if res.Placed != 1 {
		t.Errorf("Placed = %d, want 1", res.Placed)
	}
}

func TestSolve_OverConstrained(t *testing.T) {
	rec := &recorder{}
	tbl := NewTable()
	tbl.AddCell(NewCell().Callback(rec.cb("a")).MinimumSize(sz(40, 40)).PreferredSize(sz(50, 50)))
	tbl.AddCell(NewCell().Callback(rec.cb("b")).MinimumSize(sz(40, 40)).PreferredSize(sz(50, 50)))

	res := tbl.Solve(60, 30)

	if !res.OverConstrained() {
		t.Fatalf("OverConstrained() = false, want true")
	}
	if want := sz(20, 10); res.Overflow != want {
		t.Errorf("Overflow = %+v, want %+v", res.Overflow, want)
	}
	if err := res.Err(); !errors.Is(err, ErrOverConstrained) {
		t.Errorf("Err() = %v, want ErrOverConstrained", err)
	}

	// Best effort: every track sits at its minimum.
	want := []placement{
		{ID: "a", Rect: NewRect(0, 0, 40, 40)},
		{ID: "b", Rect: NewRect(40, 0, 40, 40)},
	}
	if diff := cmp.Diff(want, rec.got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve_EmptyRowsAdvanceNothing(t *testing.T) {
	rec := &recorder{}
	tbl := NewTable()
	tbl.AddCell(NewCell().Callback(rec.cb("a")).PreferredSize(sz(10, 10)))
	tbl.AddRow().AddRow()
	tbl.AddCell(NewCell().Callback(rec.cb("b")).PreferredSize(sz(10, 10)))

	tbl.Solve(10, 100)

	if b, _ := rec.byID("b"); b.Y != 10 {
		t.Errorf("b.Y = %g, want 10 (empty row has no height)", b.Y)
	}
}

func TestSolve_IsDeterministic(t *testing.T) {
	rec := &recorder{}
	tbl := buildExpanding(rec)

	tbl.Solve(320, 240)
	first := append([]placement(nil), rec.got...)

	for i := range 5 {
		rec.got = nil
		tbl.Solve(320, 240)
		if diff := cmp.Diff(first, rec.got); diff != "" {
			t.Fatalf("solve %d differs (-first +got):\n%s", i+2, diff)
		}
	}
}

func TestSolve_DoesNotMutateTable(t *testing.T) {
	rec := &recorder{}
	tbl := buildExpanding(rec)
	before := make([]CellProperties, 0, tbl.Len())
	for _, op := range tbl.Ops() {
		if op.Cell != nil {
			before = append(before, op.Cell.Clone())
		}
	}

	tbl.Solve(10, 10)
	tbl.Solve(1000, 1000)

	i := 0
	for _, op := range tbl.Ops() {
		if op.Cell == nil {
			continue
		}
		if op.Cell.Size != before[i].Size || op.Cell.Flags != before[i].Flags || op.Cell.Colspan != before[i].Colspan {
			t.Errorf("cell %d changed after Solve", i)
		}
		i++
	}
}
