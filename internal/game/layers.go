package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/warpdemo/internal/config"
	"github.com/iburimskiy/warpdemo/internal/scene"
)

var (
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cubeBlue  = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	highlight = colorful.Color{R: 1, G: 1, B: 1}
)

func (g *Game) drawFlash(dst *ebiten.Image) {
	f := &g.state.Flash
	if !f.Active {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, config.WindowWidth, config.WindowHeight, fade(white, f.Intensity), false)
}

func (g *Game) drawStarfield(dst *ebiten.Image) {
	sf := g.state.Stars
	for i, p := range sf.Stars {
		v := uint8(255 * sf.Brightness(i, g.state.Clock.T))
		vector.DrawFilledRect(dst, float32(p.X()), float32(p.Y()), 2, 2, color.RGBA{R: v, G: v, B: v, A: 255}, false)
	}
}

func (g *Game) drawRasterBars(dst *ebiten.Image) {
	bars := scene.RasterBars(config.RasterBarCount, g.state.Clock.T, config.WindowHeight/2, config.RasterBarAmp)
	for _, b := range bars {
		top := b.Y - config.RasterBarSize/2
		for k := 0; k < config.RasterBarSize; k++ {
			c := scene.BarShade(b.Color, k, config.RasterBarSize)
			vector.DrawFilledRect(dst, 0, float32(top)+float32(k), config.WindowWidth, 1, fade(c, 0.85), false)
		}
	}
}

func (g *Game) drawScroller(dst *ebiten.Image) {
	s := &g.state.Scroller
	g.font.draw(dst, s.Visible(), s.Left(), 40, config.ScrollScale, white)
}

// draw3D renders the layer around the scene center: music bars, cube,
// caption, orbiters with their explosions, warp particles, warp hole and the
// spectrum trace.
func (g *Game) draw3D(dst *ebiten.Image) {
	g.drawMusicBars(dst)
	g.drawCube(dst)
	g.drawCaption(dst)
	g.drawOrbiters(dst)
	g.drawExplosions(dst)
	g.drawWarp(dst)
	g.drawWarpHole(dst)
	g.drawWaveform(dst)
}

func (g *Game) drawMusicBars(dst *ebiten.Image) {
	levels := g.state.Music.Levels
	if len(levels) == 0 {
		return
	}
	w := float32(config.WindowWidth) / float32(len(levels))
	base := float32(config.WindowHeight - 30)
	for i, l := range levels {
		h := float32(l * 140)
		if h < 1 {
			h = 1
		}
		c := hsl(g.state.Clock.T*40+float64(i)*4, 0.9, 0.55, 0.45+0.5*l)
		vector.DrawFilledRect(dst, float32(i)*w, base-h, w-1, h, c, false)
	}
}

func (g *Game) drawCube(dst *ebiten.Image) {
	st := g.state
	pts := st.Cube.Project(st.Projector, st.Clock, st.CubeScale())
	for _, e := range st.Cube.Edges {
		a, b := pts[e[0]], pts[e[1]]
		vector.StrokeLine(dst, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), 2, cubeBlue, true)
	}
	for _, p := range pts {
		vector.DrawFilledCircle(dst, float32(p.X()), float32(p.Y()), 3, white, true)
	}
}

func (g *Game) drawCaption(dst *ebiten.Image) {
	const scale = 2
	w := g.font.width(config.Caption, scale)
	c := hsl(g.state.Clock.T*120, 1, 0.7, 1)
	g.font.draw(dst, config.Caption, config.WindowWidth-w-10, 10, scale, c)
}

func (g *Game) drawOrbiters(dst *ebiten.Image) {
	t := g.state.Clock.T
	for _, o := range g.state.Orbiters.Bodies {
		glow := o.Glow(t)
		n := len(o.Trail)
		for i := n - 1; i >= 0; i-- {
			alpha, size := scene.TrailStyle(i, n)
			p := o.Trail[i]
			vector.DrawFilledCircle(dst, float32(p.X()), float32(p.Y()), float32(size), fade(glow, alpha*0.8), true)
		}
		head, ok := o.Head()
		if !ok {
			continue
		}
		x, y := float32(head.X()), float32(head.Y())
		vector.DrawFilledCircle(dst, x, y, 12, fade(glow, 0.18), true)
		vector.DrawFilledCircle(dst, x, y, 7, fade(glow, 0.45), true)
		vector.DrawFilledCircle(dst, x, y, 4, white, true)
	}
}

func (g *Game) drawExplosions(dst *ebiten.Image) {
	for _, p := range g.state.Explosions.Items {
		vector.DrawFilledCircle(dst, float32(p.Pos.X()), float32(p.Pos.Y()), 2.5, fade(p.Color, p.Life), true)
	}
}

func (g *Game) drawWarp(dst *ebiten.Image) {
	center := g.state.Projector.Center
	for i := range g.state.Warp.Items {
		p := &g.state.Warp.Items[i]
		head := p.Pos(center)
		tail := scene.WarpParticle{Angle: p.Angle - p.Spiral*3, Radius: p.Radius + p.Speed*3}
		tp := tail.Pos(center)
		vector.StrokeLine(dst, float32(tp.X()), float32(tp.Y()), float32(head.X()), float32(head.Y()), 1.5, fade(p.Color, p.Life), true)
	}
}

func (g *Game) drawWarpHole(dst *ebiten.Image) {
	c := g.state.Projector.Center
	r := float32(config.WarpHoleRadius * (1 + 0.4*g.state.Music.Energy))
	vector.DrawFilledCircle(dst, float32(c.X()), float32(c.Y()), r, color.Black, true)
	ring := hsl(g.state.Clock.T*90, 1, 0.6, 0.9)
	vector.StrokeCircle(dst, float32(c.X()), float32(c.Y()), r, 2, ring, true)
}

// drawWaveform traces the raw spectrum of the last frame across the top of
// the screen.
func (g *Game) drawWaveform(dst *ebiten.Image) {
	curve := g.state.Music.Curve()
	if len(curve) < 2 {
		return
	}
	const base, height = 110.0, 50.0
	step := float64(config.WindowWidth) / float64(len(curve)-1)
	c := fade(white, 0.6)
	for i := 1; i < len(curve); i++ {
		x0, x1 := float64(i-1)*step, float64(i)*step
		y0, y1 := base-curve[i-1]*height, base-curve[i]*height
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, false)
	}
}

var outlineDirs = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (g *Game) drawSineScroller(dst *ebiten.Image) {
	for _, gl := range g.state.Sine.Glyphs(g.state.Clock.T) {
		g.drawGlyph(dst, gl.Char, gl.X+config.SineShadow, gl.Y+config.SineShadow, color.RGBA{A: 160})
		for _, d := range outlineDirs {
			g.drawGlyph(dst, gl.Char, gl.X+d[0]*config.SineOutline, gl.Y+d[1]*config.SineOutline, white)
		}
		g.drawGlyph(dst, gl.Char, gl.X, gl.Y, fromColorful(gl.Color, 1))
		// Lighter upper half gives the fill a vertical gradient.
		top := fromColorful(gl.Color.BlendRgb(highlight, 0.35), 0.5)
		g.drawGlyphClipped(dst, gl.Char, gl.X, gl.Y, top)
	}
}

func (g *Game) drawGlyph(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

// drawGlyphClipped draws only the upper half of the glyph's line box.
func (g *Game) drawGlyphClipped(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	m := g.face.Metrics()
	half := int(math.Ceil((m.HAscent + m.HDescent) / 2))
	r := image.Rect(int(x), int(y), int(math.Ceil(x+text.Advance(s, g.face))), int(y)+half)
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	g.drawGlyph(dst.SubImage(r).(*ebiten.Image), s, x, y, clr)
}
