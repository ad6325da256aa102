// Package input tracks pointer and keyboard state between ticks.
package input

import (
	"strings"
	"sync"
)

// Key identifiers understood by the camera controller. Any other identifier is
// stored but ignored downstream.
const (
	KeyForward    = "w"
	KeyBack       = "s"
	KeyLeft       = "a"
	KeyRight      = "d"
	KeyUp         = "q"
	KeyDown       = "e"
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
)

// State is an immutable view of the input at one instant
type State struct {
	// PX and PY are the normalized pointer coordinates in [-1,1], +Y up
	PX, PY float64
	keys   map[string]bool
}

// Held reports whether any of the given keys is held
func (s State) Held(keys ...string) bool {
	for _, key := range keys {
		if s.keys[key] {
			return true
		}
	}
	return false
}

// Keys returns the number of held keys
func (s State) Keys() int {
	return len(s.keys)
}

// Tracker records raw events. Events may arrive from a different goroutine
// than the one taking snapshots.
type Tracker struct {
	mu     sync.RWMutex
	px, py float64
	keys   map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{keys: make(map[string]bool)}
}

// RecordPointerMove normalizes a pixel position against the viewport.
// Non-positive viewport dimensions leave the pointer unchanged.
func (t *Tracker) RecordPointerMove(rawX, rawY, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}

	px := 2*rawX/width - 1
	py := -(2*rawY/height - 1)

	t.mu.Lock()
	t.px, t.py = px, py
	t.mu.Unlock()
}

func (t *Tracker) RecordKeyDown(key string) {
	t.mu.Lock()
	t.keys[strings.ToLower(key)] = true
	t.mu.Unlock()
}

func (t *Tracker) RecordKeyUp(key string) {
	t.mu.Lock()
	delete(t.keys, strings.ToLower(key))
	t.mu.Unlock()
}

// Snapshot copies the current state
func (t *Tracker) Snapshot() State {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make(map[string]bool, len(t.keys))
	for key := range t.keys {
		keys[key] = true
	}

	return State{PX: t.px, PY: t.py, keys: keys}
}
