// Package ambient modulates the room's cosmetic effects: the orange point
// light, the TV screen glow and the floating sphere.
package ambient

import (
	"math"

	"github.com/akmonengine/hearth/actor"
)

type Params struct {
	LightBase     float64 `yaml:"light_base"`
	LightSwing    float64 `yaml:"light_swing"`
	LightRate     float64 `yaml:"light_rate"`
	EmissiveBase  float64 `yaml:"emissive_base"`
	EmissiveSwing float64 `yaml:"emissive_swing"`
	EmissiveRate  float64 `yaml:"emissive_rate"`
	SpinPerTick   float64 `yaml:"spin_per_tick"`
	FloatHeight   float64 `yaml:"float_height"`
	FloatSwing    float64 `yaml:"float_swing"`
	FloatRate     float64 `yaml:"float_rate"`
}

func DefaultParams() Params {
	return Params{
		LightBase:     0.6,
		LightSwing:    0.2,
		LightRate:     2,
		EmissiveBase:  0.5,
		EmissiveSwing: 0.2,
		EmissiveRate:  3,
		SpinPerTick:   0.02,
		FloatHeight:   2,
		FloatSwing:    0.1,
		FloatRate:     3,
	}
}

// State is the result of the last update
type State struct {
	LightIntensity    float64
	EmissiveIntensity float64
	Spin              float64
}

// Targets are the handles the dynamics write through
type Targets struct {
	Light  actor.LightHandle
	Screen actor.Handle
	Sphere actor.Handle
}

// Dynamics is stateless apart from the sphere spin, which advances by a fixed
// angle per tick regardless of frame time.
type Dynamics struct {
	Params  Params
	Targets Targets
	state   State
}

func New(params Params, targets Targets) *Dynamics {
	return &Dynamics{Params: params, Targets: targets}
}

func (d *Dynamics) Update(graph *actor.Graph, elapsed float64) State {
	p := d.Params

	d.state.LightIntensity = p.LightBase + math.Sin(elapsed*p.LightRate)*p.LightSwing
	d.state.EmissiveIntensity = p.EmissiveBase + math.Sin(elapsed*p.EmissiveRate)*p.EmissiveSwing
	d.state.Spin += p.SpinPerTick

	graph.Light(d.Targets.Light).Intensity = d.state.LightIntensity
	graph.Node(d.Targets.Screen).Material.EmissiveIntensity = d.state.EmissiveIntensity

	sphere := graph.Transform(d.Targets.Sphere)
	sphere.Euler[1] = d.state.Spin
	sphere.Position[1] = p.FloatHeight + math.Sin(elapsed*p.FloatRate)*p.FloatSwing

	return d.state
}

// State returns the result of the last update
func (d *Dynamics) State() State {
	return d.state
}
