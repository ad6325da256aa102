package rig

import (
	"math"

	"github.com/akmonengine/hearth/actor"
)

// WalkerParams holds the walker constants. PathRate and StrideRate are
// independent: the limb cadence is not derived from the walking speed.
type WalkerParams struct {
	Radius     float64 `yaml:"radius"`
	PathRate   float64 `yaml:"path_rate"`
	StrideRate float64 `yaml:"stride_rate"`
	BobHeight  float64 `yaml:"bob_height"`
	TorsoPulse float64 `yaml:"torso_pulse"`
	ArmRest    float64 `yaml:"arm_rest"`
	ArmSwing   float64 `yaml:"arm_swing"`
	LegSwing   float64 `yaml:"leg_swing"`
	HeadRate   float64 `yaml:"head_rate"`
	HeadYaw    float64 `yaml:"head_yaw"`
}

func DefaultWalkerParams() WalkerParams {
	return WalkerParams{
		Radius:     3,
		PathRate:   0.5,
		StrideRate: 4,
		BobHeight:  0.08,
		TorsoPulse: 0.03,
		ArmRest:    0.3,
		ArmSwing:   0.4,
		LegSwing:   0.5,
		HeadRate:   2,
		HeadYaw:    0.3,
	}
}

// Walker circles the room center, facing along the path
type Walker struct {
	Params WalkerParams
	Parts  Legged
	// Phase is the accumulated angle along the circular path
	Phase float64
}

func NewWalker(params WalkerParams, parts Legged) *Walker {
	return &Walker{Params: params, Parts: parts}
}

func (w *Walker) Name() string { return "walker" }

func (w *Walker) Animate(graph *actor.Graph, elapsed, dt float64) {
	p := w.Params
	w.Phase += p.PathRate * dt

	stride := math.Sin(elapsed * p.StrideRate)

	group := graph.Transform(w.Parts.Group)
	group.Position[0] = math.Cos(w.Phase) * p.Radius
	group.Position[1] = math.Abs(stride) * p.BobHeight
	group.Position[2] = math.Sin(w.Phase) * p.Radius
	group.Euler[1] = w.Phase + math.Pi/2

	graph.Transform(w.Parts.Body).Scale[1] = 1 + stride*p.TorsoPulse
	graph.Transform(w.Parts.LeftArm).Euler[2] = p.ArmRest + stride*p.ArmSwing
	graph.Transform(w.Parts.RightArm).Euler[2] = -p.ArmRest - stride*p.ArmSwing
	graph.Transform(w.Parts.LeftLeg).Euler[0] = stride * p.LegSwing
	graph.Transform(w.Parts.RightLeg).Euler[0] = -stride * p.LegSwing
	graph.Transform(w.Parts.Head).Euler[1] = math.Sin(elapsed*p.HeadRate) * p.HeadYaw
}
