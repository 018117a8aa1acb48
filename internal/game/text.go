package game

import (
	"bytes"
	"image/color"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/iburimskiy/warpdemo/internal/bitfont"
	"github.com/iburimskiy/warpdemo/internal/config"
)

// bitmapFont is the fixed-grid font used for the message scroller and the
// caption.
type bitmapFont struct {
	atlas *ebiten.Image
	grid  bitfont.Grid
}

// loadBitmapFont reads the font image at path. If there is no such file, an
// atlas is generated from the built-in fallback face.
func loadBitmapFont(path string) (*bitmapFont, error) {
	if _, err := os.Stat(path); err == nil {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "load font %s", path)
		}
		return &bitmapFont{
			atlas: img,
			grid: bitfont.Grid{
				CellW:  config.GlyphWidth,
				CellH:  config.GlyphHeight,
				PerRow: config.GlyphsPerRow,
			},
		}, nil
	}

	log.Printf("font %s not found, using built-in glyphs", path)
	rgba, grid := bitfont.Generate()
	return &bitmapFont{atlas: ebiten.NewImageFromImage(rgba), grid: grid}, nil
}

// draw blits s at (x, y). Unknown characters are skipped.
func (f *bitmapFont) draw(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	for _, p := range f.grid.Layout(s, x, y, scale) {
		glyph := f.atlas.SubImage(p.Src).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleWithColor(clr)
		dst.DrawImage(glyph, op)
	}
}

func (f *bitmapFont) width(s string, scale float64) float64 {
	return f.grid.Width(s, scale)
}

// newSineFace returns the large face of the sine scroller.
func newSineFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "load scroller font")
	}
	return &text.GoTextFace{Source: src, Size: config.SineFontSize}, nil
}
