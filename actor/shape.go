package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

// ShapeType represents the type of drawable shape
type ShapeType int

const (
	ShapeTypeSphere ShapeType = iota
	ShapeTypeBox
	ShapeTypePlane
	ShapeTypeCylinder
)

// Ray is a half-line. Direction does not need to be normalized: hit
// distances are expressed in units of Direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit describes a ray/shape intersection in the shape's local space
type Hit struct {
	T      float64
	Normal mgl64.Vec3
}

// Shape is the interface that all drawable shapes must implement.
// Shapes are defined in local space and may be shared between nodes.
type Shape interface {
	Type() ShapeType
	// Bounds returns the local-space bounding box
	Bounds() AABB
	// Intersect returns the nearest hit with T > 0
	Intersect(ray Ray) (Hit, bool)
}

// Box represents an axis-aligned box in local space
// The box is defined by its half-extents (half-width, half-height, half-depth)
type Box struct {
	HalfExtents mgl64.Vec3
}

// NewBox creates a box from its full dimensions
func NewBox(width, height, depth float64) *Box {
	return &Box{HalfExtents: mgl64.Vec3{width / 2, height / 2, depth / 2}}
}

func (b *Box) Type() ShapeType { return ShapeTypeBox }

func (b *Box) Bounds() AABB {
	return AABB{Min: b.HalfExtents.Mul(-1), Max: b.HalfExtents}
}

func (b *Box) Intersect(ray Ray) (Hit, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	entryAxis, exitAxis := -1, -1

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		direction := ray.Direction[axis]
		half := b.HalfExtents[axis]

		if math.Abs(direction) < epsilon {
			if origin < -half || origin > half {
				return Hit{}, false
			}
			continue
		}

		t1 := (-half - origin) / direction
		t2 := (half - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = axis
		}
		if t2 < tmax {
			tmax = t2
			exitAxis = axis
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	t, axis := tmin, entryAxis
	if t <= epsilon {
		// Origin inside the box, report the exit face
		t, axis = tmax, exitAxis
	}
	if t <= epsilon || axis < 0 {
		return Hit{}, false
	}

	var normal mgl64.Vec3
	if ray.At(t)[axis] > 0 {
		normal[axis] = 1
	} else {
		normal[axis] = -1
	}

	return Hit{T: t, Normal: normal}, true
}

// Sphere represents a sphere centered on the local origin. A hemisphere keeps
// only the open upper half (y >= 0).
type Sphere struct {
	Radius     float64
	Hemisphere bool
}

func (s *Sphere) Type() ShapeType { return ShapeTypeSphere }

func (s *Sphere) Bounds() AABB {
	radiusVec := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	bounds := AABB{Min: radiusVec.Mul(-1), Max: radiusVec}
	if s.Hemisphere {
		bounds.Min[1] = 0
	}

	return bounds
}

func (s *Sphere) Intersect(ray Ray) (Hit, bool) {
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Origin.Dot(ray.Direction)
	c := ray.Origin.Dot(ray.Origin) - s.Radius*s.Radius

	for _, t := range roots(a, b, c) {
		if t <= epsilon {
			continue
		}
		p := ray.At(t)
		if s.Hemisphere && p.Y() < 0 {
			continue
		}
		return Hit{T: t, Normal: p.Normalize()}, true
	}

	return Hit{}, false
}

// Plane represents a finite double-sided rectangle in the local XY plane,
// facing +Z before rotation.
type Plane struct {
	Width  float64
	Height float64
}

func (p *Plane) Type() ShapeType { return ShapeTypePlane }

func (p *Plane) Bounds() AABB {
	return AABB{
		Min: mgl64.Vec3{-p.Width / 2, -p.Height / 2, 0},
		Max: mgl64.Vec3{p.Width / 2, p.Height / 2, 0},
	}
}

func (p *Plane) Intersect(ray Ray) (Hit, bool) {
	if math.Abs(ray.Direction.Z()) < epsilon {
		return Hit{}, false
	}

	t := -ray.Origin.Z() / ray.Direction.Z()
	if t <= epsilon {
		return Hit{}, false
	}

	point := ray.At(t)
	if math.Abs(point.X()) > p.Width/2 || math.Abs(point.Y()) > p.Height/2 {
		return Hit{}, false
	}

	normal := mgl64.Vec3{0, 0, 1}
	if ray.Direction.Z() > 0 {
		normal = mgl64.Vec3{0, 0, -1}
	}

	return Hit{T: t, Normal: normal}, true
}

// Cylinder represents a (possibly tapered) cylinder along the local Y axis,
// centered on the origin. Open cylinders have no end caps.
type Cylinder struct {
	RadiusTop    float64
	RadiusBottom float64
	Height       float64
	Open         bool
}

func (c *Cylinder) Type() ShapeType { return ShapeTypeCylinder }

func (c *Cylinder) Bounds() AABB {
	r := math.Max(c.RadiusTop, c.RadiusBottom)

	return AABB{
		Min: mgl64.Vec3{-r, -c.Height / 2, -r},
		Max: mgl64.Vec3{r, c.Height / 2, r},
	}
}

// radiusAt returns the side radius at local height y
func (c *Cylinder) radiusAt(y float64) float64 {
	slope := (c.RadiusTop - c.RadiusBottom) / c.Height

	return c.RadiusBottom + slope*(y+c.Height/2)
}

func (c *Cylinder) Intersect(ray Ray) (Hit, bool) {
	best := Hit{T: math.Inf(1)}
	found := false
	halfHeight := c.Height / 2

	// Side: x² + z² = (a + b·y)²
	slope := (c.RadiusTop - c.RadiusBottom) / c.Height
	a0 := c.RadiusBottom + slope*halfHeight
	o, d := ray.Origin, ray.Direction
	k := a0 + slope*o.Y()

	qa := d.X()*d.X() + d.Z()*d.Z() - slope*slope*d.Y()*d.Y()
	qb := 2 * (o.X()*d.X() + o.Z()*d.Z() - slope*d.Y()*k)
	qc := o.X()*o.X() + o.Z()*o.Z() - k*k

	for _, t := range roots(qa, qb, qc) {
		if t <= epsilon || t >= best.T {
			continue
		}
		p := ray.At(t)
		if math.Abs(p.Y()) > halfHeight || c.radiusAt(p.Y()) < 0 {
			continue
		}
		normal := mgl64.Vec3{p.X(), -slope * c.radiusAt(p.Y()), p.Z()}
		if normal.Len() < epsilon {
			continue
		}
		best = Hit{T: t, Normal: normal.Normalize()}
		found = true
	}

	if !c.Open && math.Abs(d.Y()) > epsilon {
		caps := [2]struct {
			y      float64
			radius float64
		}{
			{halfHeight, c.RadiusTop},
			{-halfHeight, c.RadiusBottom},
		}
		for _, end := range caps {
			t := (end.y - o.Y()) / d.Y()
			if t <= epsilon || t >= best.T {
				continue
			}
			p := ray.At(t)
			if p.X()*p.X()+p.Z()*p.Z() > end.radius*end.radius {
				continue
			}
			best = Hit{T: t, Normal: mgl64.Vec3{0, math.Copysign(1, end.y), 0}}
			found = true
		}
	}

	return best, found
}

// roots returns the real roots of a·t² + b·t + c, ascending
func roots(a, b, c float64) []float64 {
	if math.Abs(a) < epsilon {
		if math.Abs(b) < epsilon {
			return nil
		}
		return []float64{-c / b}
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sq := math.Sqrt(discriminant)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	return []float64{t1, t2}
}
