package hearth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akmonengine/hearth/actor"
	"github.com/akmonengine/hearth/camera"
)

// DefaultInterval approximates a 60 Hz display refresh
const DefaultInterval = time.Second / 60

var (
	ErrTornDown       = errors.New("hearth: scheduler torn down")
	ErrAlreadyMounted = errors.New("hearth: scheduler already mounted")
	ErrRunning        = errors.New("hearth: scheduler already running")
)

// Renderer draws the scene once per tick
type Renderer interface {
	Draw(graph *actor.Graph, cam *camera.Controller) error
	// Resize is only called with positive dimensions
	Resize(width, height int)
}

// Scheduler owns the clock and drives the scene one tick at a time.
// All ticks run on the goroutine calling Run (or Tick); input listeners may be
// called from any goroutine.
type Scheduler struct {
	Scene    *Scene
	Renderer Renderer
	Clock    *Clock
	Events   *Events
	Interval time.Duration

	ticks atomic.Uint64

	mu            sync.Mutex
	subscriptions []*Subscription
	mounted       bool
	pendingResize *ResizeEvent
	pendingRetune *RoomOptions

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewScheduler creates a scheduler. A nil renderer runs headless.
func NewScheduler(scene *Scene, renderer Renderer, clock *Clock, events *Events, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = NewClock(SystemTime{})
	}
	if events == nil {
		events = NewEvents()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Scheduler{
		Scene:    scene,
		Renderer: renderer,
		Clock:    clock,
		Events:   events,
		Interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Mount registers the input and resize listeners
func (s *Scheduler) Mount() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped() {
		return ErrTornDown
	}
	if s.mounted {
		return ErrAlreadyMounted
	}

	tracker := s.Scene.Input
	s.subscriptions = append(s.subscriptions,
		s.Events.Subscribe(POINTER_MOVE, func(event Event) {
			e := event.(PointerMoveEvent)
			tracker.RecordPointerMove(e.X, e.Y, e.Width, e.Height)
		}),
		s.Events.Subscribe(KEY_DOWN, func(event Event) {
			tracker.RecordKeyDown(event.(KeyDownEvent).Key)
		}),
		s.Events.Subscribe(KEY_UP, func(event Event) {
			tracker.RecordKeyUp(event.(KeyUpEvent).Key)
		}),
		s.Events.Subscribe(RESIZE, func(event Event) {
			s.latchResize(event.(ResizeEvent))
		}),
	)
	s.mounted = true

	slog.Debug("scheduler mounted", "listeners", len(s.subscriptions))
	return nil
}

// latchResize keeps the latest valid size until the next tick
func (s *Scheduler) latchResize(e ResizeEvent) {
	if e.Width <= 0 || e.Height <= 0 {
		slog.Debug("ignoring empty resize", "width", e.Width, "height", e.Height)
		return
	}

	s.mu.Lock()
	s.pendingResize = &e
	s.mu.Unlock()
}

func (s *Scheduler) applyResize() {
	s.mu.Lock()
	e := s.pendingResize
	s.pendingResize = nil
	s.mu.Unlock()

	if e == nil {
		return
	}

	pixelAspect := e.PixelAspect
	if pixelAspect <= 0 {
		pixelAspect = 1
	}
	s.Scene.Camera.Projection.Resize(float64(e.Width), float64(e.Height)*pixelAspect)
	if s.Renderer != nil {
		s.Renderer.Resize(e.Width, e.Height)
	}
}

// Retune schedules new scene constants for the next tick. It may be called
// from any goroutine; only the latest options are applied.
func (s *Scheduler) Retune(opts RoomOptions) {
	s.mu.Lock()
	s.pendingRetune = &opts
	s.mu.Unlock()
}

func (s *Scheduler) applyRetune() {
	s.mu.Lock()
	opts := s.pendingRetune
	s.pendingRetune = nil
	s.mu.Unlock()

	if opts != nil {
		s.Scene.Retune(*opts)
		slog.Debug("scene retuned", "tick", s.ticks.Load()+1)
	}
}

// Tick runs one frame: retune, resize, clock, camera, characters, ambient, draw.
func (s *Scheduler) Tick() error {
	if s.stopped() {
		return ErrTornDown
	}

	s.applyRetune()
	s.applyResize()

	elapsed, dt := s.Clock.Tick()
	state := s.Scene.Step(elapsed, dt)

	if s.Renderer != nil {
		if err := s.Renderer.Draw(s.Scene.Graph, s.Scene.Camera); err != nil {
			return fmt.Errorf("draw tick %d: %w", s.ticks.Load()+1, err)
		}
	}

	n := s.ticks.Add(1)
	s.Events.Dispatch(FrameEvent{Tick: n, Elapsed: elapsed, Delta: dt, Ambient: state})

	return nil
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// Run ticks at the configured interval until ctx is cancelled, Teardown is
// called, or a tick fails. Cancellation is checked before every tick.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopChan:
			return nil
		default:
		}

		if err := s.Tick(); err != nil {
			if errors.Is(err, ErrTornDown) {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.stopChan:
			return nil
		case <-ticker.C:
		}
	}
}

// Teardown stops scheduling and removes every listener added by Mount.
// It is safe to call several times, and before or without Mount.
func (s *Scheduler) Teardown() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		slog.Debug("scheduler stopping", "ticks", s.ticks.Load())
	})

	s.mu.Lock()
	subscriptions := s.subscriptions
	s.subscriptions = nil
	s.mu.Unlock()

	for _, sub := range subscriptions {
		sub.Unsubscribe()
	}
}

func (s *Scheduler) stopped() bool {
	select {
	case <-s.stopChan:
		return true
	default:
		return false
	}
}
