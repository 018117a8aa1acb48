package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/warpdemo/internal/config"
)

// Phase is the lifecycle of the frame composer.
type Phase int

const (
	// Idle is the state before the first tick. Nothing is drawn.
	Idle Phase = iota
	// Running means the clock is advancing once per tick.
	Running
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return "unknown"
}

// State is every piece of mutable simulation state. It is owned by the game
// loop and only changed inside Tick.
type State struct {
	Phase Phase
	Clock Clock
	Flash Flash

	Projector  Projector
	Cube       Cube
	Orbiters   *Orbiters
	Explosions Explosions
	Warp       Warp
	Stars      *Starfield
	Music      *MusicBars
	Scroller   Scroller
	Sine       *SineScroller

	// Collisions holds the points that exploded during the last tick.
	Collisions []mgl64.Vec2

	rng *rand.Rand
}

// NewState builds the scene for a w×h screen. advance measures a glyph of the
// sine scroller font.
func NewState(w, h float64, advance func(string) float64, rng *rand.Rand) *State {
	center := mgl64.Vec2{w / 2, h / 2}
	s := &State{
		Phase: Idle,
		Clock: Clock{
			Step:  config.TimeStep,
			RateX: config.RotationX,
			RateY: config.RotationY,
			RateZ: config.RotationZ,
		},
		Flash: Flash{
			Decay:  config.FlashDecay,
			Shake:  config.ShakeAmount,
			Offset: config.ChromaticOffset,
		},
		Projector: Projector{
			Center:    center,
			BaseScale: config.BaseScale,
			Pulse:     config.PulseAmplitude,
			Distance:  config.CameraDistance,
		},
		Cube: NewCube(config.CubeSize),
		Orbiters: NewOrbiters(config.OrbiterCount,
			config.OrbiterRadius, config.OrbiterRadiusInc,
			config.OrbiterSpeed, config.OrbiterSpeedInc,
			config.TrailCapacity, config.CollisionDistSq),
		Explosions: Explosions{
			Count:    config.ExplosionCount,
			MinSpeed: config.ExplosionMinSpeed,
			MaxSpeed: config.ExplosionMaxSpeed,
			Decay:    config.ExplosionDecay,
			Drag:     config.ExplosionDrag,
		},
		Warp: Warp{
			PerTick:    config.WarpSpawnPerTick,
			MinRadius:  config.WarpMinRadius,
			MaxRadius:  config.WarpMaxRadius,
			MinSpeed:   config.WarpMinSpeed,
			MaxSpeed:   config.WarpMaxSpeed,
			MinSpiral:  config.WarpMinSpiral,
			MaxSpiral:  config.WarpMaxSpiral,
			Decay:      config.WarpDecay,
			CullRadius: config.WarpCullRadius,
		},
		Stars: NewStarfield(config.StarCount, w, h, config.StarSpeed, rng),
		Music: NewMusicBars(config.MusicBarCount, config.TPS, config.SpringFreq, config.SpringDamping),
		Scroller: Scroller{
			Text:        config.ScrollMessage,
			StartX:      w,
			CharWidth:   config.GlyphWidth * config.ScrollScale,
			CharsPerSec: config.ScrollCharsPerSec,
			PxPerSec:    config.ScrollPxPerSec,
		},
		Sine: NewSineScroller(config.SineMessage, advance, w, config.SineBaseline, config.SineAmplitude, config.SineSpeed),
		rng:  rng,
	}
	s.Sine.HueRate = config.SineHueRate
	s.Sine.HueStep = config.SineCharHueStep
	return s
}

// Tick advances the whole scene by one fixed step. The update order follows
// the draw order of the layers: flash, stars, message scroller, music, 3D
// layer (orbiters, collisions, sparks, warp), sine scroller.
func (s *State) Tick(spectrum []float64) {
	if s.Phase == Idle {
		s.Phase = Running
	}
	s.Clock.Advance()
	s.Warp.Spawn(s.rng)

	s.Flash.Step()
	s.Stars.Step(s.rng)
	s.Scroller.Step(s.Clock.Step)
	s.Music.Update(spectrum)

	s.Collisions = s.Orbiters.Step(s.Projector, s.Clock)
	for _, p := range s.Collisions {
		s.Explosions.Burst(p, s.rng)
		s.Flash.Trigger()
	}
	s.Explosions.Step()
	s.Warp.Step()

	s.Sine.Step()
}

// Shake returns this frame's camera offset.
func (s *State) Shake() (dx, dy float64) {
	return s.Flash.ShakeOffset(s.rng)
}

// CubeScale is the cube size multiplier driven by low-frequency energy.
func (s *State) CubeScale() float64 {
	return 1 + 0.6*s.Music.Energy
}
