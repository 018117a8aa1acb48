package bitfont

import (
	"image"
	"testing"
)

var demoGrid = Grid{CellW: 6, CellH: 8, PerRow: 200}

func TestRect(t *testing.T) {
	tests := []struct {
		r    rune
		want image.Rectangle
		ok   bool
	}{
		{' ', image.Rect(0, 0, 6, 8), true},
		{'!', image.Rect(6, 0, 12, 8), true},
		{'A', image.Rect(33*6, 0, 34*6, 8), true},
		{'~', image.Rect(94*6, 0, 95*6, 8), true},
		{'\n', image.Rectangle{}, false},
		{127, image.Rectangle{}, false},
		{'é', image.Rectangle{}, false},
	}
	for _, tt := range tests {
		got, ok := demoGrid.Rect(tt.r)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Rect(%q) = %v, %v; want %v, %v", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRectWrapsRows(t *testing.T) {
	g := Grid{CellW: 6, CellH: 8, PerRow: 10}
	got, ok := g.Rect(' ' + 23)
	if !ok || got != image.Rect(18, 16, 24, 24) {
		t.Errorf("got %v, %v", got, ok)
	}
}

func TestLayoutSkipsUnknown(t *testing.T) {
	got := demoGrid.Layout("A\tB", 10, 20, 2)
	if len(got) != 2 {
		t.Fatalf("got %d placements, want 2", len(got))
	}
	if got[0].X != 10 || got[1].X != 34 {
		t.Errorf("x positions %v, %v; want 10, 34", got[0].X, got[1].X)
	}
	if got[1].Y != 20 {
		t.Errorf("y %v", got[1].Y)
	}
	if w := demoGrid.Width("A\tB", 2); w != 36 {
		t.Errorf("width %v, want 36", w)
	}
}

func TestGenerate(t *testing.T) {
	img, g := Generate()
	if g.CellW != 7 || g.CellH != 13 {
		t.Fatalf("cell %dx%d", g.CellW, g.CellH)
	}
	rect, ok := g.Rect('~')
	if !ok || !rect.In(img.Bounds()) {
		t.Fatalf("glyph rect %v outside atlas %v", rect, img.Bounds())
	}

	lit := func(r rune) int {
		rect, _ := g.Rect(r)
		n := 0
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				if img.RGBAAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if lit(' ') != 0 {
		t.Error("space should be blank")
	}
	if lit('W') == 0 {
		t.Error("W should have lit pixels")
	}
}
