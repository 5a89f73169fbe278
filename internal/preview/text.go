package preview

import (
	"math"

	"github.com/grindlemire/go-tablelayout/internal/document"
)

// Text draws sol on a cols by rows canvas. Layout units are scaled
// independently per axis so the whole target fits. Each placement is
// outlined with border and labelled with its id; placements too small for
// an outline get the label alone. Zero-area placements are skipped.
func Text(sol document.Solution, cols, rows int, border BorderStyle) *Canvas {
	c := NewCanvas(cols, rows)
	if sol.Width <= 0 || sol.Height <= 0 {
		return c
	}
	sx := float32(cols) / sol.Width
	sy := float32(rows) / sol.Height

	for _, p := range sol.Placements {
		r := p.Rect()
		if r.IsEmpty() {
			continue
		}
		r = r.Scale(sx, sy)
		x0, y0 := round(r.X), round(r.Y)
		x1, y1 := round(r.Right()), round(r.Bottom())
		w, h := x1-x0, y1-y0
		if w <= 0 || h <= 0 {
			continue
		}

		if border != BorderNone && w >= 2 && h >= 2 {
			DrawBox(c, x0, y0, w, h, border)
			if h >= 3 {
				c.SetString(x0+1, y0+1, p.ID, x1-1)
			}
			continue
		}
		c.SetString(x0, y0, p.ID, x1)
	}
	return c
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
