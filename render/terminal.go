// Package render draws the scene graph into a terminal by casting one ray per
// character cell.
package render

import (
	"errors"
	"math"

	"github.com/akmonengine/hearth/actor"
	"github.com/akmonengine/hearth/camera"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrNoSurface = errors.New("render: no drawing surface")

// Surface is the part of tcell.Screen the renderer draws into
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// drawable is a shaped node prepared for one frame
type drawable struct {
	node    *actor.Node
	inverse mgl64.Mat4
	normal  mgl64.Mat3
	bounds  actor.AABB
}

// Terminal renders into a Surface, one background-colored cell per ray
type Terminal struct {
	surface Surface
	// Background color of rays hitting nothing
	Sky mgl64.Vec3

	width, height int
	pixels        []mgl64.Vec3
	drawables     []drawable
	tiles         *tileGrid
}

func NewTerminal(surface Surface, sky mgl64.Vec3) (*Terminal, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	t := &Terminal{surface: surface, Sky: sky}
	t.Resize(surface.Size())

	return t, nil
}

// Resize sets the drawing size in cells. Non-positive sizes are ignored.
func (t *Terminal) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	t.width, t.height = width, height
	t.pixels = make([]mgl64.Vec3, width*height)
	if t.tiles == nil || !t.tiles.fits(width, height) {
		t.tiles = newTileGrid(width, height)
	}
}

// Size returns the drawing size in cells
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// Pixel returns the color traced for cell (x, y) by the last Draw
func (t *Terminal) Pixel(x, y int) mgl64.Vec3 {
	return t.pixels[y*t.width+x]
}

func (t *Terminal) Draw(graph *actor.Graph, cam *camera.Controller) error {
	if t.width == 0 || t.height == 0 {
		return nil
	}

	orientation := cam.State.Orientation()
	origin := cam.State.Position
	tanHalf := math.Tan(mgl64.DegToRad(cam.Projection.FOV) / 2)

	t.prepare(graph, cam)
	lights := graph.Lights()

	for y := 0; y < t.height; y++ {
		ndcY := 1 - 2*(float64(y)+0.5)/float64(t.height)
		for x := 0; x < t.width; x++ {
			ndcX := 2*(float64(x)+0.5)/float64(t.width) - 1

			local := mgl64.Vec3{ndcX * tanHalf * cam.Projection.Aspect, ndcY * tanHalf, -1}
			direction := orientation.Rotate(local)

			color := t.trace(actor.Ray{Origin: origin, Direction: direction}, t.tiles.query(x, y), lights)
			t.pixels[y*t.width+x] = color
			t.surface.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(Color(color)))
		}
	}
	t.surface.Show()

	return nil
}

// prepare caches the inverse world matrix of every drawable and bins it in tiles
func (t *Terminal) prepare(graph *actor.Graph, cam *camera.Controller) {
	t.drawables = t.drawables[:0]
	t.tiles.clear()
	viewProjection := cam.Projection.Matrix().Mul4(cam.State.View())

	graph.Drawables(func(h actor.Handle, node *actor.Node, world mgl64.Mat4) {
		inverse := world.Inv()
		d := drawable{
			node:    node,
			inverse: inverse,
			normal:  inverse.Mat3().Transpose(),
			bounds:  node.Shape.Bounds().Transform(world),
		}
		t.drawables = append(t.drawables, d)
		t.tiles.insert(len(t.drawables)-1, t.screenRect(d.bounds, viewProjection, cam.Projection.Near))
	})
}

// screenRect projects a world box to the cells it may cover. Boxes crossing
// the near plane cover the whole screen.
func (t *Terminal) screenRect(bounds actor.AABB, viewProjection mgl64.Mat4, near float64) rect {
	full := rect{0, 0, t.width - 1, t.height - 1}
	r := rect{math.MaxInt, math.MaxInt, math.MinInt, math.MinInt}

	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{bounds.Min.X(), bounds.Min.Y(), bounds.Min.Z()}
		if i&1 != 0 {
			corner[0] = bounds.Max.X()
		}
		if i&2 != 0 {
			corner[1] = bounds.Max.Y()
		}
		if i&4 != 0 {
			corner[2] = bounds.Max.Z()
		}

		// Clip W is the depth in front of the camera
		clip := viewProjection.Mul4x1(corner.Vec4(1))
		if clip.W() < near {
			return full
		}

		ndcX := clip.X() / clip.W()
		ndcY := clip.Y() / clip.W()
		x := int(math.Floor((ndcX + 1) / 2 * float64(t.width)))
		y := int(math.Floor((1 - ndcY) / 2 * float64(t.height)))

		r.minX, r.maxX = min(r.minX, x), max(r.maxX, x)
		r.minY, r.maxY = min(r.minY, y), max(r.maxY, y)
	}

	return r
}

// trace returns the shaded color of the nearest candidate hit, or the sky
func (t *Terminal) trace(ray actor.Ray, candidates []int, lights []actor.Light) mgl64.Vec3 {
	nearest := math.Inf(1)
	var hit *drawable
	var normal mgl64.Vec3

	for _, i := range candidates {
		d := &t.drawables[i]
		if entry, ok := d.bounds.IntersectRay(ray); !ok || entry >= nearest {
			continue
		}

		local := actor.Ray{
			Origin:    d.inverse.Mul4x1(ray.Origin.Vec4(1)).Vec3(),
			Direction: d.inverse.Mul4x1(ray.Direction.Vec4(0)).Vec3(),
		}
		h, ok := d.node.Shape.Intersect(local)
		if !ok || h.T >= nearest {
			continue
		}

		nearest = h.T
		hit = d
		normal = d.normal.Mul3x1(h.Normal)
	}

	if hit == nil {
		return t.Sky
	}

	normal = normal.Normalize()
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Mul(-1)
	}

	return shade(hit.node.Material, ray.At(nearest), normal, lights)
}
