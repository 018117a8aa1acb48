package scene

import "math/rand/v2"

// flashEpsilon absorbs float drift so repeated decrements land on zero.
const flashEpsilon = 1e-9

// Flash is the white-out triggered by a collision. While active it also
// drives camera shake and the chromatic offset.
type Flash struct {
	Active    bool
	Intensity float64

	Decay  float64
	Shake  float64
	Offset int
}

func (f *Flash) Trigger() {
	f.Active = true
	f.Intensity = 1
}

// Step fades the flash by one tick.
func (f *Flash) Step() {
	if !f.Active {
		return
	}
	f.Intensity -= f.Decay
	if f.Intensity <= flashEpsilon {
		f.Intensity = 0
		f.Active = false
	}
	f.Intensity = clamp01(f.Intensity)
}

// ChromaticOffset is the channel displacement for this frame.
func (f *Flash) ChromaticOffset() int {
	if !f.Active {
		return 0
	}
	return f.Offset
}

// ShakeBound is the largest translation allowed on either axis.
func (f *Flash) ShakeBound() float64 {
	if !f.Active {
		return 0
	}
	return f.Shake * f.Intensity * 2
}

// ShakeOffset picks a random translation within ShakeBound.
func (f *Flash) ShakeOffset(rng *rand.Rand) (dx, dy float64) {
	b := f.ShakeBound()
	if b == 0 {
		return 0, 0
	}
	return (rng.Float64()*2 - 1) * b, (rng.Float64()*2 - 1) * b
}
