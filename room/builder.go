// Package room builds the static scene graph: walls, furniture, lights and the
// skeletons of the three characters.
package room

import (
	"math"

	"github.com/akmonengine/hearth/actor"
	"github.com/akmonengine/hearth/ambient"
	"github.com/akmonengine/hearth/rig"
	"github.com/go-gl/mathgl/mgl64"
)

// Handles are the nodes animated after setup
type Handles struct {
	Walker  rig.Legged
	Sitter  rig.Limbs
	Child   rig.Legged
	Ambient ambient.Targets
}

// Sky is the background color
var Sky = actor.RGB(0x87ceeb)

func solid(hex uint32) actor.Material {
	return actor.Material{Color: actor.RGB(hex)}
}

func rotated(t actor.Transform, x, y, z float64) actor.Transform {
	t.Euler = mgl64.Vec3{x, y, z}
	return t
}

// Build creates the room graph and returns the handles of its animated nodes
func Build() (*actor.Graph, Handles) {
	g := actor.NewGraph()
	var h Handles

	g.AddLight(actor.Light{Type: actor.LightTypeAmbient, Color: actor.RGB(0xffffff), Intensity: 0.6})
	g.AddLight(actor.Light{
		Type:      actor.LightTypeDirectional,
		Color:     actor.RGB(0xffffff),
		Intensity: 0.8,
		Position:  mgl64.Vec3{10, 20, 10},
	})
	h.Ambient.Light = g.AddLight(actor.Light{
		Type:      actor.LightTypePoint,
		Color:     actor.RGB(0xffa500),
		Intensity: 0.8,
		Position:  mgl64.Vec3{0, 5, 0},
		Distance:  20,
	})

	buildShell(g)
	h.Ambient.Screen = buildFurniture(g)

	h.Ambient.Sphere = g.Add("sphere", actor.NoHandle, actor.At(0, 2, 0), &actor.Sphere{Radius: 0.4}, solid(0xff6347))

	h.Walker = buildMan(g)
	h.Sitter = buildWoman(g)
	h.Child = buildChild(g)

	return g, h
}

func buildShell(g *actor.Graph) {
	wall := solid(0xf5deb3)
	wide := &actor.Plane{Width: 30, Height: 12}

	g.Add("floor", actor.NoHandle, rotated(actor.At(0, 0, 0), -math.Pi/2, 0, 0), &actor.Plane{Width: 30, Height: 30}, solid(0x2d5016))
	g.Add("wall.back", actor.NoHandle, actor.At(0, 6, -15), wide, wall)
	g.Add("wall.left", actor.NoHandle, rotated(actor.At(-15, 6, 0), 0, math.Pi/2, 0), wide, wall)
	g.Add("wall.right", actor.NoHandle, rotated(actor.At(15, 6, 0), 0, -math.Pi/2, 0), wide, wall)
	g.Add("ceiling", actor.NoHandle, rotated(actor.At(0, 12, 0), math.Pi/2, 0, 0), &actor.Plane{Width: 30, Height: 30}, solid(0xffffff))
}

// buildFurniture adds the sofa, TV, table and lamp and returns the TV screen
func buildFurniture(g *actor.Graph) actor.Handle {
	sofa := solid(0x8b0000)
	g.Add("sofa.base", actor.NoHandle, actor.At(-7, 0.4, 5), actor.NewBox(4, 0.8, 2), sofa)
	g.Add("sofa.back", actor.NoHandle, actor.At(-7, 1.35, 4.2), actor.NewBox(4, 1.5, 0.4), sofa)
	g.Add("sofa.armLeft", actor.NoHandle, actor.At(-9, 0.9, 5), actor.NewBox(0.4, 1, 2), sofa)
	g.Add("sofa.armRight", actor.NoHandle, actor.At(-5, 0.9, 5), actor.NewBox(0.4, 1, 2), sofa)

	g.Add("tv", actor.NoHandle, actor.At(-7, 1.7, -13.5), actor.NewBox(2.5, 1.5, 0.1), solid(0x111111))
	screen := g.Add("tv.screen", actor.NoHandle, actor.At(-7, 1.7, -13.45), &actor.Plane{Width: 2.2, Height: 1.3}, actor.Material{
		Color:             actor.RGB(0x0066cc),
		Emissive:          actor.RGB(0x003366),
		EmissiveIntensity: 0.7,
	})

	table := solid(0x8b4513)
	g.Add("table.top", actor.NoHandle, actor.At(0, 1.5, 0), actor.NewBox(4, 0.2, 2), table)
	leg := &actor.Cylinder{RadiusTop: 0.1, RadiusBottom: 0.1, Height: 1.5}
	for _, pos := range [][3]float64{{-1.8, 0.75, -0.8}, {1.8, 0.75, -0.8}, {-1.8, 0.75, 0.8}, {1.8, 0.75, 0.8}} {
		g.Add("table.leg", actor.NoHandle, actor.At(pos[0], pos[1], pos[2]), leg, table)
	}

	g.Add("lamp.stand", actor.NoHandle, actor.At(1.5, 2.35, 0.5), &actor.Cylinder{RadiusTop: 0.06, RadiusBottom: 0.1, Height: 1.5}, solid(0x2c2c2c))
	g.Add("lamp.shade", actor.NoHandle, actor.At(1.5, 3.3, 0.5), &actor.Cylinder{RadiusTop: 0.5, RadiusBottom: 0.6, Height: 0.7, Open: true}, actor.Material{
		Color:             actor.RGB(0xffffdd),
		Emissive:          actor.RGB(0xffffaa),
		EmissiveIntensity: 0.5,
	})

	return screen
}

var eye = &actor.Sphere{Radius: 0.04}

func addEyes(g *actor.Graph, name string, group actor.Handle, y, z float64) {
	g.Add(name+".eyeLeft", group, actor.At(-0.08, y, z), eye, solid(0x000000))
	g.Add(name+".eyeRight", group, actor.At(0.08, y, z), eye, solid(0x000000))
}

func buildMan(g *actor.Graph) rig.Legged {
	shirt := solid(0x0066cc)
	trousers := solid(0x333333)
	arm := &actor.Cylinder{RadiusTop: 0.08, RadiusBottom: 0.08, Height: 0.9}
	leg := &actor.Cylinder{RadiusTop: 0.12, RadiusBottom: 0.1, Height: 0.8}

	group := g.Group("man", actor.NoHandle, actor.At(4, 0, 2))
	parts := rig.Legged{
		Limbs: rig.Limbs{
			Group: group,
			Body:  g.Add("man.body", group, actor.At(0, 1.4, 0), &actor.Cylinder{RadiusTop: 0.3, RadiusBottom: 0.35, Height: 1.2}, shirt),
			Head:  g.Add("man.head", group, actor.At(0, 2.25, 0), &actor.Sphere{Radius: 0.25}, solid(0xffdbac)),
		},
	}
	g.Add("man.hair", group, actor.At(0, 2.35, 0), &actor.Sphere{Radius: 0.26, Hemisphere: true}, solid(0x2c1810))
	addEyes(g, "man", group, 2.3, 0.22)

	parts.LeftArm = g.Add("man.armLeft", group, rotated(actor.At(-0.38, 1.5, 0), 0, 0, 0.3), arm, shirt)
	parts.RightArm = g.Add("man.armRight", group, rotated(actor.At(0.38, 1.5, 0), 0, 0, -0.3), arm, shirt)
	parts.LeftLeg = g.Add("man.legLeft", group, actor.At(-0.15, 0.4, 0), leg, trousers)
	parts.RightLeg = g.Add("man.legRight", group, actor.At(0.15, 0.4, 0), leg, trousers)

	return parts
}

func buildWoman(g *actor.Graph) rig.Limbs {
	dress := solid(0xff1493)
	arm := &actor.Cylinder{RadiusTop: 0.07, RadiusBottom: 0.07, Height: 0.85}

	group := g.Group("woman", actor.NoHandle, rotated(actor.At(-7, 0.8, 5), 0, math.Pi, 0))
	parts := rig.Limbs{
		Group: group,
		Body:  g.Add("woman.body", group, actor.At(0, 1.35, 0), &actor.Cylinder{RadiusTop: 0.25, RadiusBottom: 0.35, Height: 1.1}, dress),
		Head:  g.Add("woman.head", group, actor.At(0, 2.15, 0), &actor.Sphere{Radius: 0.23}, solid(0xffd7ba)),
	}

	hair := actor.At(0, 2.25, 0)
	hair.Scale = mgl64.Vec3{1, 1.2, 1}
	g.Add("woman.hair", group, hair, &actor.Sphere{Radius: 0.28}, solid(0x8b4513))
	addEyes(g, "woman", group, 2.2, 0.2)

	parts.LeftArm = g.Add("woman.armLeft", group, rotated(actor.At(-0.32, 1.4, 0), 0, 0, 0.4), arm, dress)
	parts.RightArm = g.Add("woman.armRight", group, rotated(actor.At(0.32, 1.4, 0), 0, 0, -0.4), arm, dress)

	return parts
}

func buildChild(g *actor.Graph) rig.Legged {
	shirt := solid(0x00ff00)
	shorts := solid(0x0000ff)
	arm := &actor.Cylinder{RadiusTop: 0.05, RadiusBottom: 0.05, Height: 0.6}
	leg := &actor.Cylinder{RadiusTop: 0.08, RadiusBottom: 0.07, Height: 0.5}

	group := g.Group("child", actor.NoHandle, actor.At(-2, 0, 1))

	return rig.Legged{
		Limbs: rig.Limbs{
			Group:    group,
			Body:     g.Add("child.body", group, actor.At(0, 0.9, 0), &actor.Cylinder{RadiusTop: 0.2, RadiusBottom: 0.25, Height: 0.8}, shirt),
			Head:     g.Add("child.head", group, actor.At(0, 1.5, 0), &actor.Sphere{Radius: 0.18}, solid(0xffdbac)),
			LeftArm:  g.Add("child.armLeft", group, rotated(actor.At(-0.25, 1, 0), 0, 0, 0.5), arm, shirt),
			RightArm: g.Add("child.armRight", group, rotated(actor.At(0.25, 1, 0), 0, 0, -0.5), arm, shirt),
		},
		LeftLeg:  g.Add("child.legLeft", group, actor.At(-0.1, 0.25, 0), leg, shorts),
		RightLeg: g.Add("child.legRight", group, actor.At(0.1, 0.25, 0), leg, shorts),
	}
}
