package constants

import "time"

// Frame Loop Timing
const (
	// FrameInterval paces the animation loop; it also bounds how long the
	// loop waits for input before drawing the next frame
	FrameInterval = 60 * time.Millisecond
)

// Column Geometry & Motion
const (
	// ColumnSpacing is the horizontal distance between stream columns
	ColumnSpacing = 2

	// ColumnSpeed is the rows a stream head advances per frame
	ColumnSpeed = 1

	// TrailDivisor derives the trail length from terminal height (height / TrailDivisor)
	TrailDivisor = 3

	// TrailMinLength is the floor for trail length on short terminals
	TrailMinLength = 4
)

// Nucleotides is the stream alphabet, one symbol per screen cell
var Nucleotides = []rune{'A', 'T', 'C', 'G', 'U'}

// WrapAlphabetSize limits regeneration after a stream wraps to the first
// four nucleotides; U appears in the initial fill only
const WrapAlphabetSize = 4
