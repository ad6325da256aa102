package hearth

import (
	"github.com/akmonengine/hearth/ambient"
	"github.com/akmonengine/hearth/camera"
	"github.com/akmonengine/hearth/input"
	"github.com/akmonengine/hearth/rig"
	"github.com/akmonengine/hearth/room"
)

// RoomOptions parameterizes the room scene
type RoomOptions struct {
	Camera     camera.Params
	Projection camera.Projection
	Walker     rig.WalkerParams
	Sitter     rig.SitterParams
	Child      rig.ChildParams
	Ambient    ambient.Params
	Workers    int
}

func DefaultRoomOptions() RoomOptions {
	return RoomOptions{
		Camera:     camera.DefaultParams(),
		Projection: camera.DefaultProjection(16, 9),
		Walker:     rig.DefaultWalkerParams(),
		Sitter:     rig.DefaultSitterParams(),
		Child:      rig.DefaultChildParams(),
		Ambient:    ambient.DefaultParams(),
		Workers:    DEFAULT_WORKERS,
	}
}

// NewRoomScene builds the room graph and wires the camera, the three
// characters and the ambient dynamics to it.
func NewRoomScene(opts RoomOptions) *Scene {
	graph, handles := room.Build()

	scene := &Scene{
		Graph:   graph,
		Input:   input.NewTracker(),
		Camera:  camera.NewController(opts.Camera, opts.Projection),
		Ambient: ambient.New(opts.Ambient, handles.Ambient),
		Workers: opts.Workers,
	}
	scene.AddRig(rig.NewWalker(opts.Walker, handles.Walker))
	scene.AddRig(rig.NewSitter(opts.Sitter, handles.Sitter))
	scene.AddRig(rig.NewChild(opts.Child, handles.Child))

	return scene
}

// Retune swaps the tunable constants of a running scene. Animation state is
// kept: the camera position, the rig clocks and the projection aspect.
// It must run on the tick goroutine.
func (s *Scene) Retune(opts RoomOptions) {
	s.Camera.Params = opts.Camera
	s.Camera.Projection.FOV = opts.Projection.FOV
	s.Camera.Projection.Near = opts.Projection.Near
	s.Camera.Projection.Far = opts.Projection.Far

	for _, r := range s.Rigs {
		switch r := r.(type) {
		case *rig.Walker:
			r.Params = opts.Walker
		case *rig.Sitter:
			r.Params = opts.Sitter
		case *rig.Child:
			r.Params = opts.Child
		}
	}
	if s.Ambient != nil {
		s.Ambient.Params = opts.Ambient
	}
	s.Workers = opts.Workers
}
