package rig

import (
	"math"

	"github.com/akmonengine/hearth/actor"
)

type ChildParams struct {
	HopRate   float64 `yaml:"hop_rate"`
	HopHeight float64 `yaml:"hop_height"`
	SpinRate  float64 `yaml:"spin_rate"`
	ArmRate   float64 `yaml:"arm_rate"`
	ArmRest   float64 `yaml:"arm_rest"`
	ArmSwing  float64 `yaml:"arm_swing"`
	ArmPitch  float64 `yaml:"arm_pitch"`
	HeadRate  float64 `yaml:"head_rate"`
	HeadYaw   float64 `yaml:"head_yaw"`
}

func DefaultChildParams() ChildParams {
	return ChildParams{
		HopRate:   2.5,
		HopHeight: 0.3,
		SpinRate:  2,
		ArmRate:   3,
		ArmRest:   0.5,
		ArmSwing:  0.5,
		ArmPitch:  0.3,
		HeadRate:  2,
		HeadYaw:   0.4,
	}
}

// Child hops in place while spinning and waving its arms
type Child struct {
	Params ChildParams
	Parts  Legged
	// Spin is the accumulated yaw. It is never wrapped: the quaternion
	// built from it is periodic.
	Spin float64
}

func NewChild(params ChildParams, parts Legged) *Child {
	return &Child{Params: params, Parts: parts}
}

func (c *Child) Name() string { return "child" }

func (c *Child) Animate(graph *actor.Graph, elapsed, dt float64) {
	p := c.Params
	c.Spin += p.SpinRate * dt

	group := graph.Transform(c.Parts.Group)
	group.Position[1] = math.Abs(math.Sin(elapsed*p.HopRate)) * p.HopHeight
	group.Euler[1] = c.Spin

	wave := math.Sin(elapsed * p.ArmRate)
	left := graph.Transform(c.Parts.LeftArm)
	left.Euler[2] = p.ArmRest + wave*p.ArmSwing
	left.Euler[0] = wave * p.ArmPitch

	right := graph.Transform(c.Parts.RightArm)
	right.Euler[2] = -p.ArmRest - wave*p.ArmSwing
	right.Euler[0] = -wave * p.ArmPitch

	graph.Transform(c.Parts.Head).Euler[1] = math.Sin(elapsed*p.HeadRate) * p.HeadYaw
}
