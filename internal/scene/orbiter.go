package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	glowCool = colorful.Color{R: 0.0, G: 0.8, B: 1.0}
	glowHot  = colorful.Color{R: 1.0, G: 0.1, B: 0.8}
)

// Orbiter is a body circling the scene center. Only Trail changes after
// construction. Trail is newest first.
type Orbiter struct {
	Radius float64
	Speed  float64
	Phase  float64
	Trail  []mgl64.Vec2
}

// Position is the model-space position at time t.
func (o *Orbiter) Position(t float64) mgl64.Vec3 {
	theta := t*o.Speed + o.Phase
	return mgl64.Vec3{
		math.Cos(theta) * o.Radius,
		math.Sin(0.6 * theta),
		math.Sin(theta) * o.Radius,
	}
}

// push prepends p and drops the oldest point once capacity is exceeded.
func (o *Orbiter) push(p mgl64.Vec2, capacity int) {
	if len(o.Trail) < capacity {
		o.Trail = append(o.Trail, mgl64.Vec2{})
	}
	copy(o.Trail[1:], o.Trail[:len(o.Trail)-1])
	o.Trail[0] = p
}

// Head returns the newest trail point.
func (o *Orbiter) Head() (mgl64.Vec2, bool) {
	if len(o.Trail) == 0 {
		return mgl64.Vec2{}, false
	}
	return o.Trail[0], true
}

// Glow is the body color at time t, swinging between two fixed endpoints.
func (o *Orbiter) Glow(t float64) color.RGBA {
	pulse := (math.Sin(t*3+o.Phase) + 1) / 2
	r, g, b := glowCool.BlendRgb(glowHot, pulse).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// TrailStyle returns the alpha and dot radius for the trail point at age i
// in a trail of length n.
func TrailStyle(i, n int) (alpha, size float64) {
	if n == 0 {
		return 0, 0
	}
	fade := 1 - float64(i)/float64(n)
	return fade, 1 + 3*fade
}

// Orbiters is the fixed set of bodies plus the collision rule between them.
type Orbiters struct {
	Bodies      []*Orbiter
	Capacity    int
	ThresholdSq float64
}

// NewOrbiters builds n bodies with growing radius and speed, phases spread
// evenly around the circle. Odd bodies travel the other way so paths cross.
func NewOrbiters(n int, radius, radiusInc, speed, speedInc float64, capacity int, thresholdSq float64) *Orbiters {
	o := &Orbiters{Capacity: capacity, ThresholdSq: thresholdSq}
	for i := 0; i < n; i++ {
		s := speed + float64(i)*speedInc
		if i%2 == 1 {
			s = -s
		}
		o.Bodies = append(o.Bodies, &Orbiter{
			Radius: radius + float64(i)*radiusInc,
			Speed:  s,
			Phase:  float64(i) * 2 * math.Pi / float64(n),
			Trail:  make([]mgl64.Vec2, 0, capacity),
		})
	}
	return o
}

// Collisions returns one point per unordered pair whose trail heads are
// closer than the threshold. The point is the first body's trail head.
func (o *Orbiters) Collisions() []mgl64.Vec2 {
	var hits []mgl64.Vec2
	for i := 0; i < len(o.Bodies); i++ {
		a, ok := o.Bodies[i].Head()
		if !ok {
			continue
		}
		for j := i + 1; j < len(o.Bodies); j++ {
			b, ok := o.Bodies[j].Head()
			if !ok {
				continue
			}
			d := a.Sub(b)
			if d.Dot(d) < o.ThresholdSq {
				hits = append(hits, a)
			}
		}
	}
	return hits
}

// Step checks collisions against the trails as they stand (the heads are the
// previous frame's positions), then projects every body at the current clock
// and pushes the result onto its trail.
func (o *Orbiters) Step(p Projector, c Clock) []mgl64.Vec2 {
	hits := o.Collisions()
	for _, b := range o.Bodies {
		b.push(p.Project(b.Position(c.T), c), o.Capacity)
	}
	return hits
}
