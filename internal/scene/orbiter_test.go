package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testProjector() Projector {
	return Projector{Center: mgl64.Vec2{400, 300}, BaseScale: 420, Pulse: 60, Distance: 6}
}

func TestOrbiterPosition(t *testing.T) {
	o := &Orbiter{Radius: 5, Speed: 1, Phase: 0}
	got := o.Position(0)
	if !got.ApproxEqual(mgl64.Vec3{5, 0, 0}) {
		t.Fatalf("position at t=0: got %v, want (5, 0, 0)", got)
	}

	// Quarter turn: x -> 0, z -> r, y follows the slower sine.
	got = o.Position(math.Pi / 2)
	want := mgl64.Vec3{0, math.Sin(0.6 * math.Pi / 2), 5}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("position at t=pi/2: got %v, want %v", got, want)
	}
}

func TestProjectUnrotated(t *testing.T) {
	p := testProjector()
	got := p.Project(mgl64.Vec3{1, 2, 0}, Clock{})
	// sin(0) = 0, so the scale is BaseScale / Distance.
	k := 420.0 / 6
	want := mgl64.Vec2{400 + k, 300 + 2*k}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestProjectRotationOrder(t *testing.T) {
	p := testProjector()
	// A half turn about Z mirrors x and y through the center.
	got := p.Project(mgl64.Vec3{1, 0, 0}, Clock{AngleZ: math.Pi})
	k := 420.0 / 6
	if !got.ApproxEqualThreshold(mgl64.Vec2{400 - k, 300}, 1e-9) {
		t.Errorf("z half turn: got %v", got)
	}
	// A quarter turn about Y moves x into depth, which projects to center.
	got = p.Project(mgl64.Vec3{1, 0, 0}, Clock{AngleY: math.Pi / 2})
	if !got.ApproxEqualThreshold(mgl64.Vec2{400, 300}, 1e-9) {
		t.Errorf("y quarter turn: got %v", got)
	}
}

func TestTrailBounded(t *testing.T) {
	orbs := NewOrbiters(4, 1.6, 0.45, 0.55, 0.17, 25, 100)
	p := testProjector()
	clk := Clock{Step: 1.0 / 60, RateX: 0.01, RateY: 0.02, RateZ: 0.03}

	for tick := 1; tick <= 60; tick++ {
		clk.Advance()
		orbs.Step(p, clk)
		for i, b := range orbs.Bodies {
			if len(b.Trail) > 25 {
				t.Fatalf("tick %d body %d: trail length %d", tick, i, len(b.Trail))
			}
			if tick <= 25 && len(b.Trail) != tick {
				t.Fatalf("tick %d body %d: trail length %d, want %d", tick, i, len(b.Trail), tick)
			}
			if tick > 25 && len(b.Trail) != 25 {
				t.Fatalf("tick %d body %d: trail length %d, want 25", tick, i, len(b.Trail))
			}
		}
	}

	// Head is the newest projection.
	b := orbs.Bodies[0]
	want := p.Project(b.Position(clk.T), clk)
	if head, _ := b.Head(); head != want {
		t.Errorf("head: got %v, want %v", head, want)
	}
}

func TestTrailEvictsOldest(t *testing.T) {
	o := &Orbiter{}
	for i := 0; i < 5; i++ {
		o.push(mgl64.Vec2{float64(i), 0}, 3)
	}
	want := []float64{4, 3, 2}
	if len(o.Trail) != 3 {
		t.Fatalf("length %d, want 3", len(o.Trail))
	}
	for i, x := range want {
		if o.Trail[i].X() != x {
			t.Errorf("trail[%d] = %v, want x=%v", i, o.Trail[i], x)
		}
	}
}

func TestCollisionsOnePerPair(t *testing.T) {
	tests := []struct {
		name  string
		heads []mgl64.Vec2
		want  int
	}{
		{"apart", []mgl64.Vec2{{0, 0}, {50, 0}}, 0},
		{"touching", []mgl64.Vec2{{0, 0}, {6, 6}}, 1},
		{"exactly at threshold", []mgl64.Vec2{{0, 0}, {10, 0}}, 0},
		{"three together", []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}}, 3},
		{"two pairs", []mgl64.Vec2{{0, 0}, {3, 0}, {200, 0}, {203, 0}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orbs := &Orbiters{Capacity: 25, ThresholdSq: 100}
			for _, h := range tt.heads {
				orbs.Bodies = append(orbs.Bodies, &Orbiter{Trail: []mgl64.Vec2{h}})
			}
			if got := len(orbs.Collisions()); got != tt.want {
				t.Errorf("got %d collisions, want %d", got, tt.want)
			}
		})
	}
}

func TestCollisionsSkipEmptyTrails(t *testing.T) {
	orbs := &Orbiters{Capacity: 25, ThresholdSq: 100}
	orbs.Bodies = []*Orbiter{{}, {Trail: []mgl64.Vec2{{0, 0}}}, {}}
	if got := orbs.Collisions(); len(got) != 0 {
		t.Errorf("expected no collisions, got %v", got)
	}
}

// TestStepUsesPreviousHeads pins the one-frame lag: collisions are judged on
// the trail heads from the previous step.
func TestStepUsesPreviousHeads(t *testing.T) {
	p := testProjector()
	a := &Orbiter{Radius: 2, Speed: 1}
	b := &Orbiter{Radius: 2, Speed: 1}
	orbs := &Orbiters{Bodies: []*Orbiter{a, b}, Capacity: 25, ThresholdSq: 100}

	// Both bodies share a path, so they coincide, but the first step has no
	// history yet.
	if hits := orbs.Step(p, Clock{}); len(hits) != 0 {
		t.Fatalf("first step: got %d hits, want 0", len(hits))
	}
	hits := orbs.Step(p, Clock{T: 1})
	if len(hits) != 1 {
		t.Fatalf("second step: got %d hits, want 1", len(hits))
	}
	// The explosion point is the previous frame's head, not the new one.
	if want := p.Project(a.Position(0), Clock{}); hits[0] != want {
		t.Errorf("hit at %v, want %v", hits[0], want)
	}
}

func TestGlowStaysBetweenEndpoints(t *testing.T) {
	o := &Orbiter{Phase: 1.3}
	for i := 0; i < 200; i++ {
		c := o.Glow(float64(i) * 0.05)
		if c.A != 255 {
			t.Fatalf("alpha %d", c.A)
		}
	}
	alpha, size := TrailStyle(0, 25)
	if alpha != 1 || size != 4 {
		t.Errorf("newest point: alpha %v size %v", alpha, size)
	}
	alpha, size = TrailStyle(24, 25)
	if alpha <= 0 || alpha >= 0.1 || size >= 1.2 {
		t.Errorf("oldest point: alpha %v size %v", alpha, size)
	}
}
