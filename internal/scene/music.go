package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// levelCeiling is log10(1 + |X|²) for a full-scale tone in a 1024-point
// transform, rounded up. Levels are normalized against it.
const levelCeiling = 5.5

// level maps a squared magnitude to [0, 1] on a log scale.
func level(mag float64) float64 {
	if mag <= 0 {
		return 0
	}
	return clamp01(math.Log10(1+mag) / levelCeiling)
}

// MusicBars turns the latest spectrum into spring-smoothed bar heights.
type MusicBars struct {
	Levels []float64
	Energy float64

	spring harmonica.Spring
	vel    []float64
	curve  []float64
}

func NewMusicBars(n, fps int, frequency, damping float64) *MusicBars {
	return &MusicBars{
		Levels: make([]float64, n),
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		vel:    make([]float64, n),
	}
}

// bandEdges splits the lower half of an n-bin spectrum into bars bands whose
// width grows geometrically, so bass gets its own bars.
func bandEdges(bins, bars int) []int {
	half := bins / 2
	edges := make([]int, bars+1)
	for i := range edges {
		e := int(math.Pow(float64(half), float64(i)/float64(bars)))
		if i > 0 && e <= edges[i-1] {
			e = edges[i-1] + 1
		}
		if e > half {
			e = half
		}
		edges[i] = e
	}
	return edges
}

// Update pulls the bars toward the levels of frame. A nil frame lets every
// bar relax to zero.
func (m *MusicBars) Update(frame []float64) {
	targets := make([]float64, len(m.Levels))
	if len(frame) > 0 {
		edges := bandEdges(len(frame), len(m.Levels))
		for i := range targets {
			lo, hi := edges[i], edges[i+1]
			if hi <= lo {
				continue
			}
			peak := 0.0
			for _, v := range frame[lo:hi] {
				peak = math.Max(peak, v)
			}
			targets[i] = level(peak)
		}
	}

	sum := 0.0
	for i, target := range targets {
		p, v := m.spring.Update(m.Levels[i], m.vel[i], target)
		m.Levels[i] = clamp01(p)
		m.vel[i] = v
		if i < 8 {
			sum += m.Levels[i]
		}
	}
	if n := min(8, len(m.Levels)); n > 0 {
		m.Energy = sum / float64(n)
	}
	m.curve = m.curve[:0]
	for i := 0; i < len(frame)/2; i++ {
		m.curve = append(m.curve, level(frame[i]))
	}
}

// Curve is the unsmoothed level of every bin in the lower half of the last
// frame, for the waveform trace.
func (m *MusicBars) Curve() []float64 { return m.curve }
