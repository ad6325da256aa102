// Package camera blends smoothed pointer look-around with keyboard fly controls.
package camera

import (
	"github.com/akmonengine/hearth/input"
	"github.com/go-gl/mathgl/mgl64"
)

// Params holds the controller constants
type Params struct {
	// Pointer look-around
	LateralGain  float64 `yaml:"lateral_gain"`
	VerticalGain float64 `yaml:"vertical_gain"`
	BaseHeight   float64 `yaml:"base_height"`
	// Smoothing is the fraction of the remaining error removed per tick
	Smoothing float64 `yaml:"smoothing"`
	// MoveSpeed is the keyboard fly speed in units per second
	MoveSpeed float64    `yaml:"move_speed"`
	Start     mgl64.Vec3 `yaml:"start"`
	Target    mgl64.Vec3 `yaml:"target"`
}

// DefaultParams returns the constants of the reference room
func DefaultParams() Params {
	return Params{
		LateralGain:  5,
		VerticalGain: 2,
		BaseHeight:   2,
		Smoothing:    0.05,
		MoveSpeed:    5,
		Start:        mgl64.Vec3{0, 2, 8},
		Target:       mgl64.Vec3{0, 2, 0},
	}
}

// State is the camera placement. Orientation is derived from it on demand.
type State struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

var worldUp = mgl64.Vec3{0, 1, 0}

// View returns the world-to-camera matrix looking at the target
func (s State) View() mgl64.Mat4 {
	return mgl64.LookAtV(s.Position, s.Target, worldUp)
}

// Orientation returns the camera-to-world rotation: it takes the camera's -Z
// axis onto the direction of the target, keeping +Y as close to world up as
// possible.
func (s State) Orientation() mgl64.Quat {
	forward := s.Forward()
	right := forward.Cross(worldUp)
	if right.Len() < 1e-9 {
		// Looking straight up or down
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(forward)

	basis := mgl64.Mat3FromCols(right, up, forward.Mul(-1))
	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}

// Forward returns the unit view direction
func (s State) Forward() mgl64.Vec3 {
	return s.Target.Sub(s.Position).Normalize()
}

// Controller owns the camera state for the lifetime of the scene
type Controller struct {
	Params     Params
	State      State
	Projection Projection
}

func NewController(params Params, projection Projection) *Controller {
	return &Controller{
		Params:     params,
		State:      State{Position: params.Start, Target: params.Target},
		Projection: projection,
	}
}

// Update advances the camera by one tick.
// Smoothing toward the pointer target runs before keyboard translation.
func (c *Controller) Update(in input.State, dt float64) {
	p := c.Params
	pos := c.State.Position

	targetX := in.PX * p.LateralGain
	targetY := p.BaseHeight + in.PY*p.VerticalGain

	pos[0] += (targetX - pos[0]) * p.Smoothing
	pos[1] += (targetY - pos[1]) * p.Smoothing

	moveSpeed := p.MoveSpeed * dt
	if in.Held(input.KeyForward, input.KeyArrowUp) {
		pos[2] -= moveSpeed
	}
	if in.Held(input.KeyBack, input.KeyArrowDown) {
		pos[2] += moveSpeed
	}
	if in.Held(input.KeyLeft, input.KeyArrowLeft) {
		pos[0] -= moveSpeed
	}
	if in.Held(input.KeyRight, input.KeyArrowRight) {
		pos[0] += moveSpeed
	}
	if in.Held(input.KeyUp) {
		pos[1] += moveSpeed
	}
	if in.Held(input.KeyDown) {
		pos[1] -= moveSpeed
	}

	c.State.Position = pos
	c.State.Target = p.Target
}
