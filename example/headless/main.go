package main

import (
	"fmt"
	"math"
	"time"

	"github.com/akmonengine/hearth"
	"github.com/akmonengine/hearth/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// PoseLogger prints the animated nodes after each step
type PoseLogger struct {
	graph *actor.Graph
	nodes []string
}

func (p *PoseLogger) Log(frame hearth.FrameEvent) {
	fmt.Printf("--- TICK %d (t=%.3fs, dt=%.4fs) ---\n", frame.Tick, frame.Elapsed, frame.Delta)
	for _, name := range p.nodes {
		h, ok := p.graph.Lookup(name)
		if !ok {
			continue
		}
		t := p.graph.Transform(h)
		fmt.Printf("  %-8s position %v yaw %.3f\n", name, roundVec(p.graph.WorldPosition(h)), t.Euler.Y())
	}
	fmt.Printf("  ambient  light %.3f glow %.3f spin %.3f\n",
		frame.Ambient.LightIntensity, frame.Ambient.EmissiveIntensity, frame.Ambient.Spin)
}

func roundVec(v mgl64.Vec3) mgl64.Vec3 {
	for i := range v {
		v[i] = math.Round(v[i]*1000) / 1000
	}
	return v
}

// SetupScene creates the room with a manual clock, no renderer and a held key
func SetupScene() (*hearth.Scheduler, *hearth.ManualTime) {
	provider := hearth.NewManualTime(time.Unix(0, 0))
	scene := hearth.NewRoomScene(hearth.DefaultRoomOptions())
	scheduler := hearth.NewScheduler(scene, nil, hearth.NewClock(provider), nil, 0)

	logger := &PoseLogger{graph: scene.Graph, nodes: []string{"man", "woman", "child", "sphere"}}
	scheduler.Events.Subscribe(hearth.FRAME, func(event hearth.Event) {
		logger.Log(event.(hearth.FrameEvent))
	})

	return scheduler, provider
}

func main() {
	scheduler, provider := SetupScene()
	if err := scheduler.Mount(); err != nil {
		panic(err)
	}
	defer scheduler.Teardown()

	scheduler.Events.Dispatch(hearth.ResizeEvent{Width: 1280, Height: 720})
	scheduler.Events.Dispatch(hearth.KeyDownEvent{Key: "w"})

	const step = time.Second / 60
	const maxSteps int = 120

	for i := 0; i < maxSteps; i++ {
		if err := scheduler.Tick(); err != nil {
			panic(err)
		}
		provider.Advance(step)
	}

	fmt.Printf("Camera after %d ticks: %v\n", scheduler.Ticks(), roundVec(scheduler.Scene.Camera.State.Position))
}
