package render

import (
	"math"

	"github.com/akmonengine/hearth/actor"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// shade applies Lambert lighting plus the emissive term at a world point.
// Directional lights shine from their Position toward the origin.
func shade(material actor.Material, point, normal mgl64.Vec3, lights []actor.Light) mgl64.Vec3 {
	var light mgl64.Vec3

	for _, l := range lights {
		var contribution float64
		switch l.Type {
		case actor.LightTypeAmbient:
			contribution = l.Intensity
		case actor.LightTypeDirectional:
			contribution = l.Intensity * math.Max(0, normal.Dot(l.Position.Normalize()))
		case actor.LightTypePoint:
			toLight := l.Position.Sub(point)
			distance := toLight.Len()
			if distance == 0 {
				continue
			}
			attenuation := 1.0
			if l.Distance > 0 {
				attenuation = math.Max(0, 1-distance/l.Distance)
			}
			contribution = l.Intensity * attenuation * math.Max(0, normal.Dot(toLight.Mul(1/distance)))
		}
		light = light.Add(l.Color.Mul(contribution))
	}

	color := mgl64.Vec3{
		material.Color.X() * light.X(),
		material.Color.Y() * light.Y(),
		material.Color.Z() * light.Z(),
	}

	return color.Add(material.Emissive.Mul(material.EmissiveIntensity))
}

// Color converts a linear [0,1] color to a terminal color, clamping each channel
func Color(c mgl64.Vec3) tcell.Color {
	channel := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}

	return tcell.NewRGBColor(channel(c.X()), channel(c.Y()), channel(c.Z()))
}
