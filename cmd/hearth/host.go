package main

import (
	"strings"
	"sync"
	"time"

	"github.com/akmonengine/hearth"
	"github.com/gdamore/tcell/v2"
)

// host translates terminal events into scene events. Terminals report key
// presses and repeats only, so a held key is released once no repeat arrived
// for keyRelease.
type host struct {
	events      *hearth.Events
	keyRelease  time.Duration
	pixelAspect float64
	now         func() time.Time

	mu            sync.Mutex
	width, height int
	held          map[string]time.Time
}

func newHost(events *hearth.Events, keyRelease time.Duration, pixelAspect float64) *host {
	return &host{
		events:      events,
		keyRelease:  keyRelease,
		pixelAspect: pixelAspect,
		now:         time.Now,
		held:        make(map[string]time.Time),
	}
}

// keyName maps a key event to its lower-case name
func keyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrowup", true
	case tcell.KeyDown:
		return "arrowdown", true
	case tcell.KeyLeft:
		return "arrowleft", true
	case tcell.KeyRight:
		return "arrowright", true
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune())), true
	default:
		return "", false
	}
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// handle forwards one terminal event. It returns false when the user quits.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if name, ok := keyName(ev); ok {
			h.press(name)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.mu.Lock()
		width, height := h.width, h.height
		h.mu.Unlock()

		// Cell centers, so the pointer can reach both edges symmetrically
		h.events.Dispatch(hearth.PointerMoveEvent{
			X:      float64(x) + 0.5,
			Y:      float64(y) + 0.5,
			Width:  float64(width),
			Height: float64(height),
		})

	case *tcell.EventResize:
		width, height := ev.Size()
		h.mu.Lock()
		h.width, h.height = width, height
		h.mu.Unlock()

		h.events.Dispatch(hearth.ResizeEvent{Width: width, Height: height, PixelAspect: h.pixelAspect})
	}

	return true
}

func (h *host) press(name string) {
	h.mu.Lock()
	_, down := h.held[name]
	h.held[name] = h.now()
	h.mu.Unlock()

	if !down {
		h.events.Dispatch(hearth.KeyDownEvent{Key: name})
	}
}

// releaseStale releases every key silent for longer than keyRelease
func (h *host) releaseStale() {
	now := h.now()
	var released []string

	h.mu.Lock()
	for name, last := range h.held {
		if now.Sub(last) >= h.keyRelease {
			delete(h.held, name)
			released = append(released, name)
		}
	}
	h.mu.Unlock()

	for _, name := range released {
		h.events.Dispatch(hearth.KeyUpEvent{Key: name})
	}
}
