package scene

import "github.com/go-gl/mathgl/mgl64"

// Cube is the one wireframe model in the scene.
type Cube struct {
	Vertices [8]mgl64.Vec3
	Edges    [12][2]int
}

func NewCube(size float64) Cube {
	s := size
	return Cube{
		Vertices: [8]mgl64.Vec3{
			{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
			{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
		},
		Edges: [12][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// Project returns the screen position of every vertex, scaled by k.
func (c *Cube) Project(p Projector, clk Clock, k float64) [8]mgl64.Vec2 {
	var out [8]mgl64.Vec2
	for i, v := range c.Vertices {
		out[i] = p.Project(v.Mul(k), clk)
	}
	return out
}
