// Package rain implements the falling nucleotide streams and the frame
// loop that animates them.
package rain

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helix-rain/constants"
)

// Column represents one falling nucleotide stream
type Column struct {
	x        int    // Fixed horizontal position
	y        int    // Head row; negative while above the visible area
	speed    int    // Rows advanced per frame
	trailLen int    // Lit rows behind the head
	chars    []rune // One symbol per screen row, indexed by row
}

// NewColumn creates a new stream at column x for a terminal of the given height.
// The head starts above the visible area so streams enter at staggered times.
func NewColumn(x, height int, rng *rand.Rand) Column {
	trailLen := max(height/constants.TrailDivisor, constants.TrailMinLength)

	chars := make([]rune, height)
	for i := range chars {
		chars[i] = constants.Nucleotides[rng.Intn(len(constants.Nucleotides))]
	}

	return Column{
		x:        x,
		y:        -trailLen + rng.Intn(trailLen),
		speed:    constants.ColumnSpeed,
		trailLen: trailLen,
		chars:    chars,
	}
}

// Draw renders the head, the fading trail, and the erase cell one row past
// the tail. Rows outside the screen are skipped. Writes land in the screen's
// cell buffer; the scene flushes once per frame.
func (c *Column) Draw(screen tcell.Screen, height int) {
	for i := 0; i <= c.trailLen; i++ {
		row := c.y - i
		if row < 0 || row >= height || row >= len(c.chars) {
			continue
		}

		ch := c.chars[row]
		var fg tcell.Color
		if i == 0 {
			// Head is always bright white regardless of symbol
			fg = rgbToTcell(RgbHead)
		} else {
			fade := 1.0 - float64(i)/float64(c.trailLen)
			fg = rgbToTcell(NucleotideColor(ch).Scale(fade))
		}
		screen.SetContent(c.x, row, ch, nil, tcell.StyleDefault.Foreground(fg))
	}

	// Blank the cell just beyond the tail to erase the previous frame's
	// faintest pixel without a full-screen clear
	if row := c.y - c.trailLen - 1; row >= 0 && row < height {
		screen.SetContent(c.x, row, ' ', nil, tcell.StyleDefault)
	}
}

// Update advances the head and wraps the stream back above the screen once
// the tail has fully exited the bottom.
func (c *Column) Update(height int, rng *rand.Rand) {
	c.y += c.speed
	if c.y-c.trailLen > height {
		c.y = -c.trailLen + rng.Intn(c.trailLen)
		// Regenerate symbols for variety; wraps draw from A/T/C/G only,
		// the initial fill is the sole source of U
		for i := range c.chars {
			c.chars[i] = constants.Nucleotides[rng.Intn(constants.WrapAlphabetSize)]
		}
	}
}
