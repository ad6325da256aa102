package camera

import (
	"math"
	"testing"

	"github.com/akmonengine/hearth/input"
	"github.com/go-gl/mathgl/mgl64"
)

// vecNear compares component-wise with an absolute tolerance
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func newTestController() *Controller {
	return NewController(DefaultParams(), DefaultProjection(800, 600))
}

// =============================================================================
// Smoothing Tests
// =============================================================================

func TestUpdate_GeometricDecay(t *testing.T) {
	c := newTestController()
	tracker := input.NewTracker()
	// Pointer at the right edge: target x = 5, target y = 2
	tracker.RecordPointerMove(800, 300, 800, 600)
	in := tracker.Snapshot()

	initialError := 5 - c.State.Position.X()
	previous := math.Abs(initialError)

	for n := 1; n <= 120; n++ {
		c.Update(in, 1.0/60.0)

		residual := 5 - c.State.Position.X()
		expected := initialError * math.Pow(1-c.Params.Smoothing, float64(n))
		if math.Abs(residual-expected) > 1e-9 {
			t.Fatalf("tick %d: expected residual %v, got %v", n, expected, residual)
		}
		if residual < 0 {
			t.Fatalf("tick %d: overshoot, residual %v", n, residual)
		}
		if math.Abs(residual) > previous {
			t.Fatalf("tick %d: residual grew from %v to %v", n, previous, residual)
		}
		previous = math.Abs(residual)
	}
}

func TestUpdate_VerticalTarget(t *testing.T) {
	c := newTestController()
	tracker := input.NewTracker()
	// Top edge: target y = 2 + 1*2 = 4
	tracker.RecordPointerMove(400, 0, 800, 600)
	in := tracker.Snapshot()

	c.Update(in, 0)

	expected := 2 + (4-2)*0.05
	if math.Abs(c.State.Position.Y()-expected) > 1e-12 {
		t.Errorf("Expected y=%v, got %v", expected, c.State.Position.Y())
	}
	if c.State.Position.Z() != 8 {
		t.Errorf("Expected z untouched without keys, got %v", c.State.Position.Z())
	}
}

// =============================================================================
// Keyboard Tests
// =============================================================================

func TestUpdate_KeyboardTranslation(t *testing.T) {
	const dt = 0.1
	step := 5 * dt

	tests := []struct {
		name  string
		keys  []string
		delta mgl64.Vec3
	}{
		{name: "w forward", keys: []string{"w"}, delta: mgl64.Vec3{0, 0, -step}},
		{name: "arrowup forward", keys: []string{"ArrowUp"}, delta: mgl64.Vec3{0, 0, -step}},
		{name: "s back", keys: []string{"s"}, delta: mgl64.Vec3{0, 0, step}},
		{name: "arrowdown back", keys: []string{"arrowdown"}, delta: mgl64.Vec3{0, 0, step}},
		{name: "a strafe left", keys: []string{"a"}, delta: mgl64.Vec3{-step, 0, 0}},
		{name: "arrowright strafe right", keys: []string{"arrowright"}, delta: mgl64.Vec3{step, 0, 0}},
		{name: "q up", keys: []string{"Q"}, delta: mgl64.Vec3{0, step, 0}},
		{name: "e down", keys: []string{"e"}, delta: mgl64.Vec3{0, -step, 0}},
		{name: "opposing keys cancel", keys: []string{"w", "s"}, delta: mgl64.Vec3{0, 0, 0}},
		{name: "w and arrowup do not stack", keys: []string{"w", "arrowup"}, delta: mgl64.Vec3{0, 0, -step}},
		{name: "unknown key ignored", keys: []string{"x"}, delta: mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController()
			tracker := input.NewTracker()
			for _, key := range tt.keys {
				tracker.RecordKeyDown(key)
			}

			// Pointer at center keeps the smoothing target equal to the start
			// position on x and y
			start := c.State.Position
			c.Update(tracker.Snapshot(), dt)

			got := c.State.Position.Sub(start)
			if !vecNear(got, tt.delta, 1e-12) {
				t.Errorf("Expected delta %v, got %v", tt.delta, got)
			}
		})
	}
}

func TestUpdate_SmoothingRunsBeforeKeys(t *testing.T) {
	c := newTestController()
	c.State.Position = mgl64.Vec3{2, 2, 8}

	tracker := input.NewTracker()
	tracker.RecordKeyDown("d")
	c.Update(tracker.Snapshot(), 0.2)

	// Smoothed first: 2 + (0-2)*0.05 = 1.9, then +1
	if math.Abs(c.State.Position.X()-2.9) > 1e-12 {
		t.Errorf("Expected x=2.9, got %v", c.State.Position.X())
	}
}

func TestUpdate_ContinuousMotion(t *testing.T) {
	c := newTestController()
	tracker := input.NewTracker()
	tracker.RecordPointerMove(0, 600, 800, 600)
	tracker.RecordKeyDown("w")
	tracker.RecordKeyDown("q")

	const dt = 1.0 / 30.0
	// Bound per tick: smoothing of the largest possible error plus 3 key axes
	maxStep := c.Params.Smoothing*20 + math.Sqrt(3)*c.Params.MoveSpeed*dt

	previous := c.State.Position
	for n := 0; n < 300; n++ {
		c.Update(tracker.Snapshot(), dt)
		if c.State.Position.Sub(previous).Len() > maxStep {
			t.Fatalf("tick %d: jump of %v", n, c.State.Position.Sub(previous).Len())
		}
		previous = c.State.Position
	}
}

// =============================================================================
// Orientation Tests
// =============================================================================

func TestState_LooksAtFocalPoint(t *testing.T) {
	positions := []mgl64.Vec3{
		{0, 2, 8},
		{4, 3.5, 6},
		{-3, 0.5, -5},
	}

	for _, pos := range positions {
		c := newTestController()
		c.State.Position = pos
		c.Update(input.NewTracker().Snapshot(), 0)

		forward := c.State.Orientation().Rotate(mgl64.Vec3{0, 0, -1})
		if !vecNear(forward, c.State.Forward(), 1e-9) {
			t.Errorf("at %v: orientation forward %v, expected %v", pos, forward, c.State.Forward())
		}

		// Same camera basis as the view matrix
		camWorld := c.State.View().Inv()
		for _, axis := range []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
			want := camWorld.Mul4x1(axis.Vec4(0)).Vec3()
			if got := c.State.Orientation().Rotate(axis); !vecNear(got, want, 1e-9) {
				t.Errorf("at %v: axis %v maps to %v, expected %v", pos, axis, got, want)
			}
		}

		// The target sits on the view axis
		eyeSpace := c.State.View().Mul4x1(c.Params.Target.Vec4(1))
		if math.Abs(eyeSpace.X()) > 1e-9 || math.Abs(eyeSpace.Y()) > 1e-9 || eyeSpace.Z() >= 0 {
			t.Errorf("at %v: target not centered in view, got %v", pos, eyeSpace)
		}
	}
}

// =============================================================================
// Projection Tests
// =============================================================================

func TestProjectionResize(t *testing.T) {
	p := DefaultProjection(1600, 900)
	expected := 1600.0 / 900.0

	tests := []struct {
		name          string
		width, height float64
	}{
		{name: "Zero width", width: 0, height: 900},
		{name: "Zero height", width: 1600, height: 0},
		{name: "Negative", width: -10, height: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p.Resize(tt.width, tt.height) {
				t.Error("Expected resize to be ignored")
			}
			if p.Aspect != expected {
				t.Errorf("Expected aspect %v, got %v", expected, p.Aspect)
			}
			m := p.Matrix()
			for i := range m {
				if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
					t.Fatalf("Projection matrix not finite: %v", m)
				}
			}
		})
	}

	if !p.Resize(400, 400) || p.Aspect != 1 {
		t.Errorf("Expected valid resize to apply, aspect %v", p.Aspect)
	}
}
