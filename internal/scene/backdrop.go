package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Starfield scrolls points right to left at a fixed speed.
type Starfield struct {
	Stars  []mgl64.Vec2
	Width  float64
	Height float64
	Speed  float64

	noise *perlin.Perlin
}

func NewStarfield(n int, w, h, speed float64, rng *rand.Rand) *Starfield {
	s := &Starfield{
		Stars:  make([]mgl64.Vec2, n),
		Width:  w,
		Height: h,
		Speed:  speed,
		noise:  perlin.NewPerlin(2, 2, 3, rng.Int64()),
	}
	for i := range s.Stars {
		s.Stars[i] = mgl64.Vec2{rng.Float64() * w, rng.Float64() * h}
	}
	return s
}

// Step moves every star left. A star that leaves the left edge comes back at
// the right edge at a new random height.
func (s *Starfield) Step(rng *rand.Rand) {
	for i := range s.Stars {
		p := &s.Stars[i]
		p[0] -= s.Speed
		if p[0] < 0 {
			p[0] = s.Width
			p[1] = rng.Float64() * s.Height
		}
	}
}

// Brightness is the twinkle level of star i at time t, in [0.35, 1].
func (s *Starfield) Brightness(i int, t float64) float64 {
	n := s.noise.Noise2D(float64(i)*0.37, t*1.3)
	return 0.35 + 0.65*clamp01(n+0.5)
}

// RasterBar is one horizontal band.
type RasterBar struct {
	Y     float64
	Color colorful.Color
}

// RasterBars computes the bands for time t.
func RasterBars(n int, t, centerY, amplitude float64) []RasterBar {
	bars := make([]RasterBar, n)
	for i := range bars {
		fi := float64(i)
		bars[i] = RasterBar{
			Y:     centerY + math.Sin(t*1.7+fi*0.45)*amplitude,
			Color: colorful.Hsl(hue(t*60+fi*40), 1, 0.5),
		}
	}
	return bars
}

// BarShade returns the color of row k (0..size-1) of a raster bar: brightest
// in the middle, darkest at the edges.
func BarShade(c colorful.Color, k, size int) color.RGBA {
	mid := float64(size-1) / 2
	lum := 1 - math.Abs(float64(k)-mid)/(mid+1)
	shaded := colorful.Color{}.BlendRgb(c, lum)
	if lum > 0.85 {
		shaded = shaded.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, (lum-0.85)*2)
	}
	r, g, b := shaded.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
