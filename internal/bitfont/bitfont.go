// Package bitfont maps text onto a fixed-grid bitmap font: one image holding
// equally sized glyph cells, laid out left to right starting at the first
// printable ASCII character.
package bitfont

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	First = 32
	Last  = 126
)

// Grid describes the cell layout of a font image.
type Grid struct {
	CellW  int
	CellH  int
	PerRow int
}

// Rect returns the source rectangle of r, or false when r has no glyph.
func (g Grid) Rect(r rune) (image.Rectangle, bool) {
	if r < First || r > Last {
		return image.Rectangle{}, false
	}
	idx := int(r - First)
	x := (idx % g.PerRow) * g.CellW
	y := (idx / g.PerRow) * g.CellH
	return image.Rect(x, y, x+g.CellW, y+g.CellH), true
}

// Placement is one glyph positioned on screen.
type Placement struct {
	Src  image.Rectangle
	X, Y float64
}

// Layout places s starting at (x, y), scale times the cell size. Characters
// without a glyph are skipped but still take up a cell, so columns stay
// aligned.
func (g Grid) Layout(s string, x, y, scale float64) []Placement {
	out := make([]Placement, 0, len(s))
	step := float64(g.CellW) * scale
	for _, r := range s {
		if rect, ok := g.Rect(r); ok {
			out = append(out, Placement{Src: rect, X: x, Y: y})
		}
		x += step
	}
	return out
}

// Width is the pixel width of s at the given scale.
func (g Grid) Width(s string, scale float64) float64 {
	return float64(utf8.RuneCountInString(s)*g.CellW) * scale
}

// Generate renders the printable ASCII range of basicfont.Face7x13 into a
// single-row atlas. It stands in when no font image ships with the binary.
func Generate() (*image.RGBA, Grid) {
	face := basicfont.Face7x13
	g := Grid{CellW: face.Advance, CellH: face.Height, PerRow: Last - First + 1}
	img := image.NewRGBA(image.Rect(0, 0, g.CellW*g.PerRow, g.CellH))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for r := rune(First); r <= Last; r++ {
		rect, _ := g.Rect(r)
		d.Dot = fixed.P(rect.Min.X, rect.Min.Y+face.Ascent)
		d.DrawString(string(r))
	}
	return img, g
}
