package hearth

import (
	"github.com/akmonengine/hearth/actor"
	"github.com/akmonengine/hearth/ambient"
	"github.com/akmonengine/hearth/camera"
	"github.com/akmonengine/hearth/input"
	"github.com/akmonengine/hearth/rig"
)

const DEFAULT_WORKERS = 1

// Scene bundles everything a tick updates
type Scene struct {
	// Scene graph arena, owned by the builder
	Graph *actor.Graph
	Input *input.Tracker

	Camera  *camera.Controller
	Rigs    []rig.Rig
	Ambient *ambient.Dynamics
	// Workers used to animate the rigs. Rigs write disjoint nodes, so they
	// may run in parallel; the default runs them inline.
	Workers int
}

// AddRig registers a character animated every step
func (s *Scene) AddRig(r rig.Rig) {
	s.Rigs = append(s.Rigs, r)
}

// Step runs the update phases of one tick, in order
func (s *Scene) Step(elapsed, dt float64) ambient.State {
	s.Workers = max(DEFAULT_WORKERS, s.Workers)

	// Phase 1: camera, from a snapshot of the input taken once per tick
	s.Camera.Update(s.Input.Snapshot(), dt)

	// Phase 2: characters
	s.animate(elapsed, dt)

	// Phase 3: ambient dynamics
	if s.Ambient == nil {
		return ambient.State{}
	}
	return s.Ambient.Update(s.Graph, elapsed)
}

func (s *Scene) animate(elapsed, dt float64) {
	task(s.Workers, s.Rigs, func(r rig.Rig) {
		r.Animate(s.Graph, elapsed, dt)
	})
}
