package room

import (
	"math"
	"testing"

	"github.com/akmonengine/hearth/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

// vecNear compares component-wise with an absolute tolerance
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestBuild_NamedNodes(t *testing.T) {
	g, _ := Build()

	tests := []struct {
		name     string
		position mgl64.Vec3
	}{
		{"floor", mgl64.Vec3{0, 0, 0}},
		{"wall.back", mgl64.Vec3{0, 6, -15}},
		{"ceiling", mgl64.Vec3{0, 12, 0}},
		{"sofa.base", mgl64.Vec3{-7, 0.4, 5}},
		{"tv.screen", mgl64.Vec3{-7, 1.7, -13.45}},
		{"table.top", mgl64.Vec3{0, 1.5, 0}},
		{"sphere", mgl64.Vec3{0, 2, 0}},
		{"man", mgl64.Vec3{4, 0, 2}},
		{"woman", mgl64.Vec3{-7, 0.8, 5}},
		{"child", mgl64.Vec3{-2, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := g.Lookup(tt.name)
			if !ok {
				t.Fatalf("node %q not found", tt.name)
			}
			if got := g.WorldPosition(h); !vecNear(got, tt.position, epsilon) {
				t.Errorf("position = %v, want %v", got, tt.position)
			}
		})
	}
}

func TestBuild_HandlesAddressRigParts(t *testing.T) {
	g, h := Build()

	tests := []struct {
		handle actor.Handle
		name   string
	}{
		{h.Walker.Group, "man"},
		{h.Walker.Head, "man.head"},
		{h.Walker.LeftLeg, "man.legLeft"},
		{h.Walker.RightArm, "man.armRight"},
		{h.Sitter.Group, "woman"},
		{h.Sitter.Body, "woman.body"},
		{h.Sitter.LeftArm, "woman.armLeft"},
		{h.Child.Group, "child"},
		{h.Child.RightLeg, "child.legRight"},
		{h.Ambient.Screen, "tv.screen"},
		{h.Ambient.Sphere, "sphere"},
	}

	for _, tt := range tests {
		if got := g.Node(tt.handle).Name; got != tt.name {
			t.Errorf("handle %d is %q, want %q", tt.handle, got, tt.name)
		}
	}
}

func TestBuild_PartsBelongToTheirGroup(t *testing.T) {
	g, h := Build()

	parts := []struct {
		group actor.Handle
		part  actor.Handle
	}{
		{h.Walker.Group, h.Walker.Body},
		{h.Walker.Group, h.Walker.LeftArm},
		{h.Sitter.Group, h.Sitter.Head},
		{h.Child.Group, h.Child.LeftLeg},
	}

	for _, p := range parts {
		if parent := g.Node(p.part).Parent; parent != p.group {
			t.Errorf("%s parent = %d, want %d", g.Node(p.part).Name, parent, p.group)
		}
	}
}

func TestBuild_SitterFacesAwayFromBackWall(t *testing.T) {
	g, h := Build()

	if yaw := g.Transform(h.Sitter.Group).Euler[1]; math.Abs(yaw-math.Pi) > epsilon {
		t.Errorf("sitter yaw = %v, want π", yaw)
	}
}

func TestBuild_Lights(t *testing.T) {
	g, h := Build()
	lights := g.Lights()

	if len(lights) != 3 {
		t.Fatalf("Expected 3 lights, got %d", len(lights))
	}

	point := g.Light(h.Ambient.Light)
	if point.Type != actor.LightTypePoint {
		t.Errorf("animated light type = %v, want point", point.Type)
	}
	if !vecNear(point.Color, actor.RGB(0xffa500), epsilon) {
		t.Errorf("point light color = %v", point.Color)
	}
	if point.Distance != 20 {
		t.Errorf("point light distance = %v, want 20", point.Distance)
	}
}

func TestBuild_ScreenGlows(t *testing.T) {
	g, h := Build()
	screen := g.Node(h.Ambient.Screen)

	if screen.Material.EmissiveIntensity <= 0 {
		t.Errorf("screen emissive intensity = %v, want > 0", screen.Material.EmissiveIntensity)
	}
}

func TestBuild_IndependentGraphs(t *testing.T) {
	a, ha := Build()
	b, _ := Build()

	a.Transform(ha.Walker.Group).Position[0] = 100
	man, _ := b.Lookup("man")
	if b.Transform(man).Position[0] != 4 {
		t.Error("graphs share node storage")
	}
}
