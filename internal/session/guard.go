// Package session signs the user out after a period without interaction.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/benbjohnson/clock"
)

// DefaultInactivityWindow is how long a session survives without any
// interaction.
const DefaultInactivityWindow = 8 * time.Hour

var ErrUnknownEvent = errors.New("unknown interaction event")

// EventType is a user interaction that keeps the session alive.
type EventType string

const (
	EventKeyPress   EventType = "key_press"
	EventMouseMove  EventType = "mouse_move"
	EventMouseClick EventType = "mouse_click"
	EventScroll     EventType = "scroll"
	EventTouch      EventType = "touch"
	EventFocus      EventType = "focus"
)

// Valid reports whether e is one of the interaction events.
func (e EventType) Valid() bool {
	switch e {
	case EventKeyPress, EventMouseMove, EventMouseClick, EventScroll, EventTouch, EventFocus:
		return true
	}
	return false
}

// State of a guarded session.
type State int

const (
	// StateActive means the view is in the foreground and the inactivity
	// countdown is running.
	StateActive State = iota
	// StateIdle means the view is hidden and a logout check is pending.
	StateIdle
	// StateLoggedOut is final.
	StateLoggedOut
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateIdle:
		return "idle"
	case StateLoggedOut:
		return "logged_out"
	}
	return "unknown"
}

// Guard tracks interaction of one session and calls onLogout exactly once,
// either when the inactivity window passes without interaction or when
// Logout is called.
type Guard struct {
	clock    clock.Clock
	window   time.Duration
	onLogout func()

	mu         sync.Mutex
	state      State
	idleTimer  *clock.Timer
	hideTimer  *clock.Timer
	idleGen    uint64
	hideGen    uint64
	logoutOnce sync.Once

	logger *logger.Logger
}

// NewGuard returns a running guard. A non-positive window means
// DefaultInactivityWindow; a nil clk means the wall clock.
func NewGuard(clk clock.Clock, window time.Duration, onLogout func(), log *logger.Logger) *Guard {
	if clk == nil {
		clk = clock.New()
	}
	if window <= 0 {
		window = DefaultInactivityWindow
	}
	if onLogout == nil {
		onLogout = func() {}
	}

	g := &Guard{
		clock:    clk,
		window:   window,
		onLogout: onLogout,
		state:    StateActive,
		logger:   log,
	}

	g.mu.Lock()
	g.resetLocked()
	g.mu.Unlock()

	return g
}

// Touch records an interaction and restarts the countdown from the full
// window. It is a no-op after logout.
func (g *Guard) Touch(event EventType) error {
	if !event.Valid() {
		return ErrUnknownEvent
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateLoggedOut {
		return nil
	}
	g.resetLocked()
	return nil
}

// Hide marks the view as backgrounded. If it is still hidden one window
// later, the session is logged out.
func (g *Guard) Hide() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateActive {
		return
	}
	g.state = StateIdle
	g.hideGen++
	gen := g.hideGen
	g.hideTimer = g.clock.AfterFunc(g.window, func() { g.checkHidden(gen) })
}

// Show brings the view back. It counts as an interaction.
func (g *Guard) Show() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateLoggedOut {
		return
	}
	g.stopHideLocked()
	g.state = StateActive
	g.resetLocked()
}

// Logout ends the session now. Calling it again does nothing.
func (g *Guard) Logout() {
	g.mu.Lock()
	if g.state == StateLoggedOut {
		g.mu.Unlock()
		return
	}
	g.state = StateLoggedOut
	g.stopIdleLocked()
	g.stopHideLocked()
	g.mu.Unlock()

	g.logoutOnce.Do(g.onLogout)
}

// Stop releases the timers without logging out.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopIdleLocked()
	g.stopHideLocked()
}

// State returns the current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// resetLocked restarts the countdown. A timer that already fired for an
// older generation is ignored.
func (g *Guard) resetLocked() {
	g.stopIdleLocked()
	gen := g.idleGen
	g.idleTimer = g.clock.AfterFunc(g.window, func() { g.expire(gen) })
}

func (g *Guard) stopIdleLocked() {
	g.idleGen++
	if g.idleTimer != nil {
		g.idleTimer.Stop()
		g.idleTimer = nil
	}
}

func (g *Guard) stopHideLocked() {
	g.hideGen++
	if g.hideTimer != nil {
		g.hideTimer.Stop()
		g.hideTimer = nil
	}
}

func (g *Guard) expire(gen uint64) {
	g.mu.Lock()
	current := gen == g.idleGen && g.state != StateLoggedOut
	g.mu.Unlock()
	if !current {
		return
	}

	g.logger.Info().Str("func", "*Guard.expire").Dur("window", g.window).Msg("session expired after inactivity")
	g.Logout()
}

func (g *Guard) checkHidden(gen uint64) {
	g.mu.Lock()
	hidden := gen == g.hideGen && g.state == StateIdle
	g.mu.Unlock()

	if hidden {
		g.logger.Info().Str("func", "*Guard.checkHidden").Msg("session expired while hidden")
		g.Logout()
	}
}
