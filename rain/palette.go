package rain

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helix-rain/core"
)

// RGB color definitions for nucleotide streams
var (
	RgbAdenine  = core.RGB{R: 0, G: 200, B: 0}    // Green
	RgbThymine  = core.RGB{R: 200, G: 0, B: 0}    // Red
	RgbCytosine = core.RGB{R: 0, G: 100, B: 255}  // Blue
	RgbGuanine  = core.RGB{R: 220, G: 220, B: 0}  // Yellow
	RgbUracil   = core.RGB{R: 153, G: 51, B: 255} // Purple
	RgbHead     = core.RGBWhite                   // Stream head, symbol-independent
)

// NucleotideColor returns the base color for a stream symbol.
// Unknown runes fall back to green.
func NucleotideColor(ch rune) core.RGB {
	switch ch {
	case 'A':
		return RgbAdenine
	case 'T':
		return RgbThymine
	case 'C':
		return RgbCytosine
	case 'G':
		return RgbGuanine
	case 'U':
		return RgbUracil
	default:
		return RgbAdenine
	}
}

// rgbToTcell converts RGB to tcell.Color
func rgbToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
