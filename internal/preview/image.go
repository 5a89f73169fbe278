package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-tablelayout/internal/document"
)

// MaxImageSide bounds either side of a rendered image in pixels.
const MaxImageSide = 16384

// ErrImageSize is returned when the scaled target is empty or too large.
var ErrImageSize = errors.New("image size out of range")

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	outline    = color.RGBA{0x33, 0x33, 0x33, 0xff}
	palette    = []color.NRGBA{
		{0x4e, 0x79, 0xa7, 0x60},
		{0xf2, 0x8e, 0x2b, 0x60},
		{0xe1, 0x57, 0x59, 0x60},
		{0x76, 0xb7, 0xb2, 0x60},
		{0x59, 0xa1, 0x4f, 0x60},
		{0xed, 0xc9, 0x48, 0x60},
	}
)

// Image renders sol at scale pixels per layout unit. Placements are filled
// with translucent colours, outlined, and labelled with their ids.
func Image(sol document.Solution, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("scale %d: %w", scale, ErrImageSize)
	}
	w := int(math.Ceil(float64(sol.Width) * float64(scale)))
	h := int(math.Ceil(float64(sol.Height) * float64(scale)))
	if w <= 0 || h <= 0 || w > MaxImageSide || h > MaxImageSide {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrImageSize)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	s := float64(scale)
	for i, p := range sol.Placements {
		r := image.Rect(
			int(math.Round(float64(p.X)*s)),
			int(math.Round(float64(p.Y)*s)),
			int(math.Round(float64(p.X+p.Width)*s)),
			int(math.Round(float64(p.Y+p.Height)*s)),
		).Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		draw.Draw(img, r, image.NewUniform(palette[i%len(palette)]), image.Point{}, draw.Over)
		strokeRect(img, r, outline)
		label(img, r, p.ID)
	}
	return img, nil
}

// WritePNG renders sol and encodes it as PNG to w.
func WritePNG(w io.Writer, sol document.Solution, scale int) error {
	img, err := Image(sol, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// label draws id in the top-left corner of r, clipped to r.
func label(img *image.RGBA, r image.Rectangle, id string) {
	face := basicfont.Face7x13
	inner := r.Inset(2)
	if inner.Dy() < face.Height || id == "" {
		return
	}
	d := font.Drawer{
		Dst:  clipped{img, inner},
		Src:  image.NewUniform(outline),
		Face: face,
		Dot:  fixed.P(inner.Min.X, inner.Min.Y+face.Ascent),
	}
	d.DrawString(id)
}

// clipped restricts drawing on an RGBA image to a rectangle.
type clipped struct {
	*image.RGBA
	clip image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.clip
}
