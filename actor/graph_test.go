package actor

import (
	"math"
	"testing"

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

func TestTransformRotation_XYZOrder(t *testing.T) {
	tr := NewTransform()
	tr.Euler = mgl64.Vec3{0, math.Pi / 2, 0}

	got := tr.Rotation().Rotate(mgl64.Vec3{0, 0, 1})
	if !vecNear(got, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("Yaw of PI/2 should map +Z to +X, got %v", got)
	}

	// Unbounded yaw wraps in the quaternion representation
	tr.Euler = mgl64.Vec3{0, math.Pi/2 + 4*math.Pi, 0}
	wrapped := tr.Rotation().Rotate(mgl64.Vec3{0, 0, 1})
	if !vecNear(wrapped, got, 1e-9) {
		t.Errorf("Expected yaw to wrap, got %v vs %v", wrapped, got)
	}
}

func TestGraphWorld_ComposesParents(t *testing.T) {
	g := NewGraph()

	group := g.Group("walker", NoHandle, At(3, 0, 0))
	g.Transform(group).Euler = mgl64.Vec3{0, math.Pi / 2, 0}
	head := g.Add("walker.head", group, At(0, 2.25, 0.5), &Sphere{Radius: 0.25}, Material{})

	got := g.WorldPosition(head)
	expected := mgl64.Vec3{3.5, 2.25, 0}
	if !vecNear(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestGraphAdd_PromotesZeroScale(t *testing.T) {
	g := NewGraph()
	h := g.Add("box", NoHandle, Transform{Position: mgl64.Vec3{1, 2, 3}}, NewBox(1, 1, 1), Material{})

	if g.Transform(h).Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Expected unit scale, got %v", g.Transform(h).Scale)
	}
}

func TestGraphAdd_UnknownParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown parent")
		}
	}()

	g := NewGraph()
	g.Group("orphan", Handle(7), NewTransform())
}

func TestGraphLookup(t *testing.T) {
	g := NewGraph()
	h := g.Group("child", NoHandle, NewTransform())

	got, ok := g.Lookup("child")
	if !ok || got != h {
		t.Errorf("Expected handle %d, got %d (ok=%v)", h, got, ok)
	}
	if _, ok := g.Lookup("missing"); ok {
		t.Error("Expected lookup miss")
	}
}

func TestGraphDrawables_SkipsGroups(t *testing.T) {
	g := NewGraph()
	group := g.Group("group", NoHandle, At(0, 1, 0))
	g.Add("body", group, At(0, 1, 0), &Sphere{Radius: 1}, Material{})
	g.Add("arm", group, At(1, 0, 0), &Sphere{Radius: 1}, Material{})

	count := 0
	g.Drawables(func(h Handle, node *Node, world mgl64.Mat4) {
		count++
		if !vecNear(world.Col(3).Vec3(), g.WorldPosition(h), 1e-9) {
			t.Errorf("%s: cached world %v differs from World()", node.Name, world.Col(3))
		}
	})

	if count != 2 {
		t.Errorf("Expected 2 drawables, got %d", count)
	}
}

func TestRGB(t *testing.T) {
	got := RGB(0xff8000)
	if !vecNear(got, mgl64.Vec3{1, 128.0 / 255, 0}, 1e-9) {
		t.Errorf("Unexpected color %v", got)
	}
}
