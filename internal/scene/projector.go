package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projector maps model space to screen space. It holds only constants.
type Projector struct {
	Center    mgl64.Vec2
	BaseScale float64
	Pulse     float64
	Distance  float64
}

// minDepth keeps points behind the camera from flipping through infinity.
const minDepth = 0.05

// Project rotates v about X, then Y, then Z by the clock's angles and applies
// a perspective divide whose focal length breathes with time.
func (p Projector) Project(v mgl64.Vec3, c Clock) mgl64.Vec2 {
	rot := mgl64.Rotate3DZ(c.AngleZ).Mul3(mgl64.Rotate3DY(c.AngleY)).Mul3(mgl64.Rotate3DX(c.AngleX))
	w := rot.Mul3x1(v)

	depth := w.Z() + p.Distance
	if depth < minDepth {
		depth = minDepth
	}
	scale := (p.BaseScale + math.Sin(c.T*0.5)*p.Pulse) / depth
	return mgl64.Vec2{p.Center.X() + w.X()*scale, p.Center.Y() + w.Y()*scale}
}
