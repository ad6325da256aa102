package actor

import "github.com/go-gl/mathgl/mgl64"

// LightType represents the kind of light source
type LightType int

const (
	LightTypeAmbient LightType = iota
	LightTypeDirectional
	LightTypePoint
)

// LightHandle addresses a light in a Graph
type LightHandle int

// Light is a scene light. Position is the source position for point lights and
// the direction the light comes from for directional lights. A point light with
// Distance > 0 fades linearly to zero at that range.
type Light struct {
	Type      LightType
	Color     mgl64.Vec3
	Intensity float64
	Position  mgl64.Vec3
	Distance  float64
}

// AddLight appends a light and returns its handle
func (g *Graph) AddLight(light Light) LightHandle {
	g.lights = append(g.lights, light)
	return LightHandle(len(g.lights) - 1)
}

// Light returns the light addressed by h for in-place mutation
func (g *Graph) Light(h LightHandle) *Light {
	return &g.lights[h]
}

// Lights returns every light of the graph
func (g *Graph) Lights() []Light {
	return g.lights
}

// RGB converts a 0xRRGGBB color to a [0,1] vector
func RGB(hex uint32) mgl64.Vec3 {
	return mgl64.Vec3{
		float64((hex>>16)&0xff) / 255,
		float64((hex>>8)&0xff) / 255,
		float64(hex&0xff) / 255,
	}
}
