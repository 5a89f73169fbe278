package document

import (
	"fmt"

	"github.com/grindlemire/go-tablelayout/internal/layout"
)

// Placement is the solved rectangle of one cell.
type Placement struct {
	ID     string  `json:"id"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Rect returns the placement as a layout rectangle.
func (p Placement) Rect() layout.Rect {
	return layout.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Solution is a solved document.
type Solution struct {
	Width      float32       `json:"width"`
	Height     float32       `json:"height"`
	Placements []Placement   `json:"placements"`
	Result     layout.Result `json:"-"`
}

// Solve lays out doc in a width by height area. A zero width or height
// falls back to the document's own target.
func Solve(doc *Document, width, height float32) (Solution, error) {
	if width < 0 || height < 0 {
		return Solution{}, fmt.Errorf("target %gx%g: %w", width, height, ErrInvalidSize)
	}
	if width == 0 {
		width = doc.Width
	}
	if height == 0 {
		height = doc.Height
	}

	sol := Solution{Width: width, Height: height}
	t := layout.NewTable()
	err := doc.Build(t, func(id string, r layout.Rect) {
		sol.Placements = append(sol.Placements, Placement{
			ID: id, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height,
		})
	})
	if err != nil {
		return Solution{}, err
	}
	sol.Result = t.Solve(width, height)
	return sol, nil
}
