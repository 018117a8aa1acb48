package scene

import (
	"math"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Scroller types a message in from the right at a fixed rate while the whole
// line drifts left. Once the line has fully left the screen its time base is
// reset on the following tick.
type Scroller struct {
	Text        string
	StartX      float64
	CharWidth   float64
	CharsPerSec float64
	PxPerSec    float64

	Elapsed float64
	exited  bool
}

// Step advances the scroller by dt seconds.
func (s *Scroller) Step(dt float64) {
	if s.exited {
		s.Elapsed = 0
		s.exited = false
		return
	}
	s.Elapsed += dt
	if s.Left()+s.Width() < 0 {
		s.exited = true
	}
}

// Left is the x coordinate of the first character.
func (s *Scroller) Left() float64 {
	return s.StartX - s.Elapsed*s.PxPerSec
}

// Width is the pixel width of the full message.
func (s *Scroller) Width() float64 {
	return float64(utf8.RuneCountInString(s.Text)) * s.CharWidth
}

// Visible returns the part of the message revealed so far.
func (s *Scroller) Visible() string {
	n := int(s.Elapsed * s.CharsPerSec)
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s.Text {
		if i == n {
			return s.Text[:pos]
		}
		i++
	}
	return s.Text
}

// Glyph is one placed character of the sine scroller.
type Glyph struct {
	Char  string
	X, Y  float64
	Color colorful.Color
}

// SineScroller moves a line of large text left, each character riding a sine
// wave. Glyph advances are measured once when the scroller is built.
type SineScroller struct {
	X         float64
	Speed     float64
	Baseline  float64
	Amplitude float64
	ScreenW   float64
	HueRate   float64
	HueStep   float64

	chars    []string
	advances []float64
	width    float64
}

// NewSineScroller measures text with advance and places it just off the right
// edge.
func NewSineScroller(text string, advance func(string) float64, screenW, baseline, amplitude, speed float64) *SineScroller {
	s := &SineScroller{
		X:         screenW,
		Speed:     speed,
		Baseline:  baseline,
		Amplitude: amplitude,
		ScreenW:   screenW,
		HueRate:   90,
		HueStep:   14,
	}
	for _, r := range text {
		c := string(r)
		a := advance(c)
		s.chars = append(s.chars, c)
		s.advances = append(s.advances, a)
		s.width += a
	}
	return s
}

// Width is the measured width of the whole line.
func (s *SineScroller) Width() float64 { return s.width }

// Step moves the line left and wraps it to the right edge once fully gone.
func (s *SineScroller) Step() {
	s.X -= s.Speed
	if s.X+s.width < 0 {
		s.X = s.ScreenW
	}
}

// Glyphs places every character for time t. Characters entirely off screen
// are left out.
func (s *SineScroller) Glyphs(t float64) []Glyph {
	out := make([]Glyph, 0, len(s.chars))
	x := s.X
	for i, c := range s.chars {
		a := s.advances[i]
		if x+a >= 0 && x <= s.ScreenW {
			fi := float64(i)
			out = append(out, Glyph{
				Char:  c,
				X:     x,
				Y:     s.Baseline + math.Sin(t*3+fi*0.35)*s.Amplitude,
				Color: colorful.Hsl(hue(t*s.HueRate+fi*s.HueStep), 1, 0.55),
			})
		}
		x += a
	}
	return out
}
