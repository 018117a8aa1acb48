package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// sweep walks items from last to first, calling step on each. Items for which
// step returns false are removed by moving the last element into their slot.
// The moved element sits at a higher index, so it has already been stepped
// this pass. The order of survivors is not preserved.
func sweep[T any](items []T, step func(*T) bool) []T {
	for i := len(items) - 1; i >= 0; i-- {
		if step(&items[i]) {
			continue
		}
		last := len(items) - 1
		items[i] = items[last]
		items = items[:last]
	}
	return items
}

func decay(life, d float64) float64 {
	return clamp01(life - d)
}

func hsv(h, s, v float64) color.RGBA {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Particle is one spark of an explosion.
type Particle struct {
	Pos   mgl64.Vec2
	Vel   mgl64.Vec2
	Life  float64
	Color color.RGBA
}

// Explosions holds every live spark.
type Explosions struct {
	Items []Particle

	Count    int
	MinSpeed float64
	MaxSpeed float64
	Decay    float64
	Drag     float64
}

// Burst spawns Count sparks at p flying in uniformly random directions.
func (e *Explosions) Burst(p mgl64.Vec2, rng *rand.Rand) {
	for i := 0; i < e.Count; i++ {
		a := rng.Float64() * 2 * math.Pi
		s := between(rng, e.MinSpeed, e.MaxSpeed)
		e.Items = append(e.Items, Particle{
			Pos:   p,
			Vel:   mgl64.Vec2{math.Cos(a) * s, math.Sin(a) * s},
			Life:  1,
			Color: hsv(rng.Float64()*55, 0.85, 1),
		})
	}
}

// Step moves every spark, fades it and drops the dead ones.
func (e *Explosions) Step() {
	e.Items = sweep(e.Items, func(p *Particle) bool {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Mul(e.Drag)
		p.Life = decay(p.Life, e.Decay)
		return p.Life > 0
	})
}

// WarpParticle spirals inward toward the warp hole.
type WarpParticle struct {
	Angle  float64
	Radius float64
	Speed  float64
	Spiral float64
	Life   float64
	Color  color.RGBA
}

// Pos is the screen position relative to center.
func (w *WarpParticle) Pos(center mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		center.X() + math.Cos(w.Angle)*w.Radius,
		center.Y() + math.Sin(w.Angle)*w.Radius,
	}
}

// Warp is the continuous inward spiral emitter.
type Warp struct {
	Items []WarpParticle

	PerTick    int
	MinRadius  float64
	MaxRadius  float64
	MinSpeed   float64
	MaxSpeed   float64
	MinSpiral  float64
	MaxSpiral  float64
	Decay      float64
	CullRadius float64
}

// Spawn adds PerTick new particles.
func (w *Warp) Spawn(rng *rand.Rand) {
	for i := 0; i < w.PerTick; i++ {
		w.Items = append(w.Items, WarpParticle{
			Angle:  rng.Float64() * 2 * math.Pi,
			Radius: between(rng, w.MinRadius, w.MaxRadius),
			Speed:  between(rng, w.MinSpeed, w.MaxSpeed),
			Spiral: between(rng, w.MinSpiral, w.MaxSpiral),
			Life:   1,
			Color:  hsv(between(rng, 180, 280), 0.6, 1),
		})
	}
}

// Step tightens every spiral and removes particles that reached the hole or
// faded out.
func (w *Warp) Step() {
	w.Items = sweep(w.Items, func(p *WarpParticle) bool {
		p.Radius -= p.Speed
		p.Angle += p.Spiral
		p.Life = decay(p.Life, w.Decay)
		return p.Radius >= w.CullRadius && p.Life > 0
	})
}
