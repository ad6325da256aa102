package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a local placement in 3D space.
// Euler angles are applied in X, then Y, then Z order, matching the
// rotation fields the animation code writes one axis at a time.
type Transform struct {
	Position mgl64.Vec3
	Euler    mgl64.Vec3
	Scale    mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// At creates an unrotated, unscaled transform at the given position
func At(x, y, z float64) Transform {
	t := NewTransform()
	t.Position = mgl64.Vec3{x, y, z}
	return t
}

// Rotation returns the orientation quaternion for the Euler angles
func (t Transform) Rotation() mgl64.Quat {
	qx := mgl64.QuatRotate(t.Euler.X(), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(t.Euler.Y(), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(t.Euler.Z(), mgl64.Vec3{0, 0, 1})

	return qx.Mul(qy).Mul(qz).Normalize()
}

// Matrix returns the local matrix T * R * S
func (t Transform) Matrix() mgl64.Mat4 {
	translation := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translation.Mul4(t.Rotation().Mat4()).Mul4(scale)
}
