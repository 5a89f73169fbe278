package preview

import (
	"fmt"
	"strings"
)

// BorderStyle selects the characters used to outline cells.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
	BorderASCII
)

var borderNames = map[string]BorderStyle{
	"none":    BorderNone,
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"thick":   BorderThick,
	"ascii":   BorderASCII,
}

// ParseBorderStyle resolves a border name such as "single" or "rounded".
func ParseBorderStyle(name string) (BorderStyle, error) {
	b, ok := borderNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return BorderNone, fmt.Errorf("unknown border style %q", name)
	}
	return b, nil
}

// BorderChars holds the characters of a box outline.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for b. BorderNone yields spaces.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBox outlines the cell rectangle (x, y, width, height) on c.
// Boxes smaller than 2x2 and BorderNone draw nothing.
func DrawBox(c *Canvas, x, y, width, height int, border BorderStyle) {
	if width < 2 || height < 2 || border == BorderNone {
		return
	}
	chars := border.Chars()

	left, right := x, x+width-1
	top, bottom := y, y+height-1

	c.SetRune(left, top, chars.TopLeft)
	c.SetRune(right, top, chars.TopRight)
	c.SetRune(left, bottom, chars.BottomLeft)
	c.SetRune(right, bottom, chars.BottomRight)

	for cx := left + 1; cx < right; cx++ {
		c.SetRune(cx, top, chars.Top)
		c.SetRune(cx, bottom, chars.Bottom)
	}
	for cy := top + 1; cy < bottom; cy++ {
		c.SetRune(left, cy, chars.Left)
		c.SetRune(right, cy, chars.Right)
	}
}
