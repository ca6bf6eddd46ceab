// Package display owns the terminal lifecycle: screen acquisition, raw mode
// and alternate screen via tcell, dimensions captured once at startup, and
// idempotent restoration on every exit path.
package display

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Session wraps an initialized tcell screen for the lifetime of one run
type Session struct {
	screen tcell.Screen
	width  int
	height int
	fini   sync.Once
}

// NewSession acquires the terminal: raw mode, alternate screen, hidden
// cursor. The caller must Close the session on every exit path.
func NewSession() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return initSession(screen)
}

// initSession finishes setup on a created screen; split out so tests can
// drive a simulation screen through the same path.
func initSession(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.HideCursor()

	w, h := screen.Size()
	return &Session{
		screen: screen,
		width:  w,
		height: h,
	}, nil
}

// Screen returns the underlying tcell screen
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Size returns the dimensions captured at startup; mid-run resizes are
// not tracked
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// Close restores the primary screen, cursor, and cooked input mode.
// Safe to call from multiple paths (defer, panic handler); restoration
// runs exactly once.
func (s *Session) Close() {
	s.fini.Do(func() {
		s.screen.Fini()
	})
}
