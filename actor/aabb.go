package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Transform returns the world-space box enclosing the 8 transformed corners
func (a AABB) Transform(m mgl64.Mat4) AABB {
	corners := [8]mgl64.Vec3{
		{a.Min.X(), a.Min.Y(), a.Min.Z()},
		{a.Max.X(), a.Min.Y(), a.Min.Z()},
		{a.Min.X(), a.Max.Y(), a.Min.Z()},
		{a.Max.X(), a.Max.Y(), a.Min.Z()},
		{a.Min.X(), a.Min.Y(), a.Max.Z()},
		{a.Max.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Max.Z()},
		{a.Max.X(), a.Max.Y(), a.Max.Z()},
	}

	worldCorner := m.Mul4x1(corners[0].Vec4(1)).Vec3()
	min := worldCorner
	max := worldCorner

	for i := 1; i < 8; i++ {
		worldCorner = m.Mul4x1(corners[i].Vec4(1)).Vec3()

		min[0] = math.Min(min[0], worldCorner[0])
		min[1] = math.Min(min[1], worldCorner[1])
		min[2] = math.Min(min[2], worldCorner[2])

		max[0] = math.Max(max[0], worldCorner[0])
		max[1] = math.Max(max[1], worldCorner[1])
		max[2] = math.Max(max[2], worldCorner[2])
	}

	return AABB{Min: min, Max: max}
}

// IntersectRay runs the slab test and returns the entry distance along the ray.
// A ray starting inside the box reports an entry distance of 0.
func (a AABB) IntersectRay(ray Ray) (float64, bool) {
	tmin := 0.0
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		direction := ray.Direction[axis]

		if math.Abs(direction) < epsilon {
			if origin < a.Min[axis] || origin > a.Max[axis] {
				return 0, false
			}
			continue
		}

		inv := 1.0 / direction
		t1 := (a.Min[axis] - origin) * inv
		t2 := (a.Max[axis] - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	return tmin, true
}
