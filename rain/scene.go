package rain

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helix-rain/constants"
)

// Scene owns the full column set and runs the animation loop
type Scene struct {
	screen  tcell.Screen
	width   int
	height  int
	columns []Column
	rng     *rand.Rand
}

// NewScene creates a new scene with one column at every even x position,
// all sharing the dimensions captured at startup.
func NewScene(screen tcell.Screen, width, height int, rng *rand.Rand) *Scene {
	columns := make([]Column, 0, (width+constants.ColumnSpacing-1)/constants.ColumnSpacing)
	for x := 0; x < width; x += constants.ColumnSpacing {
		columns = append(columns, NewColumn(x, height, rng))
	}
	return &Scene{
		screen:  screen,
		width:   width,
		height:  height,
		columns: columns,
		rng:     rng,
	}
}

// Run drives the frame loop until a quit key arrives or the event stream
// ends. Each tick draws and updates every column, then flushes once.
func (s *Scene) Run() error {
	eventChan := make(chan tcell.Event, 16)
	go func() {
		defer close(eventChan)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				// Screen finalized or terminal gone
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if isQuitEvent(ev) {
				return nil
			}
			// Resize and all other events are ignored; dimensions are
			// captured once at startup

		case <-ticker.C:
			s.step()
		}
	}
}

// step renders one frame: every column draws then advances, creation order,
// single flush at the end.
func (s *Scene) step() {
	for i := range s.columns {
		s.columns[i].Draw(s.screen, s.height)
		s.columns[i].Update(s.height, s.rng)
	}
	s.screen.Show()
}

// isQuitEvent reports whether ev is one of the quit keys: q, Escape, or
// Ctrl+C (raw mode swallows the signal, so the key is handled here).
func isQuitEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return true
	}
	return key.Key() == tcell.KeyRune && key.Rune() == 'q'
}
