package preview

import "strings"

// glyph is one canvas cell. A width of 0 marks the trailing half of a
// wide rune.
type glyph struct {
	r     rune
	width uint8
}

// Canvas is a fixed-size grid of runes.
type Canvas struct {
	cells  []glyph
	width  int
	height int
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]glyph, width*height)
	for i := range cells {
		cells[i] = glyph{r: ' ', width: 1}
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Rune returns the rune at (x, y), or 0 outside the canvas.
func (c *Canvas) Rune(x, y int) rune {
	i := c.idx(x, y)
	if i < 0 {
		return 0
	}
	return c.cells[i].r
}

// SetRune writes r at (x, y). Wide runes occupy two cells and are dropped
// when they would not fit. Overwriting half of a wide rune blanks the
// other half.
func (c *Canvas) SetRune(x, y int, r rune) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	w := RuneWidth(r)
	if w == 2 && x+1 >= c.width {
		c.cells[i] = glyph{r: ' ', width: 1}
		return
	}

	c.unlink(x, y)
	if w == 2 {
		c.unlink(x+1, y)
		c.cells[i+1] = glyph{}
	}
	c.cells[i] = glyph{r: r, width: uint8(w)}
}

// unlink blanks the partner cell of a wide rune touching (x, y).
func (c *Canvas) unlink(x, y int) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	switch c.cells[i].width {
	case 0:
		if x > 0 {
			c.cells[i-1] = glyph{r: ' ', width: 1}
		}
	case 2:
		if x+1 < c.width {
			c.cells[i+1] = glyph{r: ' ', width: 1}
		}
	}
}

// SetString writes s from (x, y) without wrapping, stopping before limit
// (exclusive column). It returns the number of columns written.
func (c *Canvas) SetString(x, y int, s string, limit int) int {
	limit = min(limit, c.width)
	cur, written := x, 0
	for _, r := range s {
		w := RuneWidth(r)
		if cur+w > limit {
			break
		}
		if cur >= 0 {
			c.SetRune(cur, y, r)
			written += w
		}
		cur += w
	}
	return written
}

// String renders the canvas, one line per row.
func (c *Canvas) String() string {
	return c.render(false)
}

// StringTrimmed renders the canvas with trailing spaces removed from each
// line.
func (c *Canvas) StringTrimmed() string {
	return c.render(true)
}

func (c *Canvas) render(trim bool) string {
	var sb strings.Builder
	for y := range c.height {
		var line strings.Builder
		for x := range c.width {
			g := c.cells[y*c.width+x]
			if g.width == 0 {
				continue
			}
			line.WriteRune(g.r)
		}
		if trim {
			sb.WriteString(strings.TrimRight(line.String(), " "))
		} else {
			sb.WriteString(line.String())
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RuneWidth returns the number of terminal cells r occupies: 2 for CJK and
// most emoji, 1 otherwise.
func RuneWidth(r rune) int {
	switch {
	case r < 0x1100:
		return 1
	case r <= 0x115F, // Hangul Jamo
		r == 0x2329 || r == 0x232A,
		r >= 0x2E80 && r <= 0xA4CF, // CJK through Yi
		r >= 0xAC00 && r <= 0xD7A3, // Hangul syllables
		r >= 0xF900 && r <= 0xFAFF,
		r >= 0xFF00 && r <= 0xFF60, // fullwidth forms
		r >= 0xFFE0 && r <= 0xFFE6,
		r >= 0x1F300 && r <= 0x1F9FF, // pictographs
		r >= 0x1FA00 && r <= 0x1FAFF,
		r >= 0x20000 && r <= 0x3FFFF:
		return 2
	}
	return 1
}
