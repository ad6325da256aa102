package camera

import "github.com/go-gl/mathgl/mgl64"

// Projection is a perspective projection. FOV is vertical, in degrees.
type Projection struct {
	FOV    float64
	Aspect float64
	Near   float64
	Far    float64
}

func DefaultProjection(width, height float64) Projection {
	p := Projection{FOV: 75, Aspect: 1, Near: 0.1, Far: 1000}
	p.Resize(width, height)

	return p
}

// Resize recomputes the aspect ratio. Non-positive sizes are ignored and the
// last valid aspect is kept.
func (p *Projection) Resize(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	p.Aspect = width / height
	return true
}

// Matrix returns the camera-to-clip matrix
func (p Projection) Matrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
}
