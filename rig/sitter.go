package rig

import (
	"math"

	"github.com/akmonengine/hearth/actor"
)

// SitterParams holds the seated character constants. Head yaw and pitch run
// at different rates.
type SitterParams struct {
	SeatHeight    float64 `yaml:"seat_height"`
	BreathRate    float64 `yaml:"breath_rate"`
	BreathDepth   float64 `yaml:"breath_depth"`
	HeadYawRate   float64 `yaml:"head_yaw_rate"`
	HeadYaw       float64 `yaml:"head_yaw"`
	HeadPitchRate float64 `yaml:"head_pitch_rate"`
	HeadPitch     float64 `yaml:"head_pitch"`
	ArmRest       float64 `yaml:"arm_rest"`
	ArmSway       float64 `yaml:"arm_sway"`
	BobRate       float64 `yaml:"bob_rate"`
	BobHeight     float64 `yaml:"bob_height"`
}

func DefaultSitterParams() SitterParams {
	return SitterParams{
		SeatHeight:    0.8,
		BreathRate:    1.5,
		BreathDepth:   0.02,
		HeadYawRate:   0.8,
		HeadYaw:       0.2,
		HeadPitchRate: 1.2,
		HeadPitch:     0.1,
		ArmRest:       0.4,
		ArmSway:       0.15,
		BobRate:       2,
		BobHeight:     0.02,
	}
}

// Sitter stays on the sofa, breathing and glancing around
type Sitter struct {
	Params SitterParams
	Parts  Limbs
}

func NewSitter(params SitterParams, parts Limbs) *Sitter {
	return &Sitter{Params: params, Parts: parts}
}

func (s *Sitter) Name() string { return "sitter" }

func (s *Sitter) Animate(graph *actor.Graph, elapsed, dt float64) {
	p := s.Params
	breath := math.Sin(elapsed * p.BreathRate)

	graph.Transform(s.Parts.Body).Scale[1] = 1 + breath*p.BreathDepth

	head := graph.Transform(s.Parts.Head)
	head.Euler[1] = math.Sin(elapsed*p.HeadYawRate) * p.HeadYaw
	head.Euler[0] = math.Sin(elapsed*p.HeadPitchRate) * p.HeadPitch

	graph.Transform(s.Parts.LeftArm).Euler[2] = p.ArmRest + breath*p.ArmSway
	graph.Transform(s.Parts.RightArm).Euler[2] = -p.ArmRest - breath*p.ArmSway
	graph.Transform(s.Parts.Group).Position[1] = p.SeatHeight + math.Sin(elapsed*p.BobRate)*p.BobHeight
}
