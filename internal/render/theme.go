package render

import (
	"fmt"
	"image/color"

	"github.com/hailam/bitframe/internal/board"
)

// Theme defines the colors used for a frame diagram.
type Theme struct {
	LightSquare   color.RGBA
	DarkSquare    color.RGBA
	MoverFill     color.RGBA
	MoverInk      color.RGBA
	OpponentFill  color.RGBA
	OpponentInk   color.RGBA
	OverlayMarker color.RGBA
	Outline       color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:   color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:    color.RGBA{181, 136, 99, 255},  // Brown
		MoverFill:     color.RGBA{248, 248, 248, 255},
		MoverInk:      color.RGBA{30, 30, 30, 255},
		OpponentFill:  color.RGBA{40, 44, 52, 255},
		OpponentInk:   color.RGBA{220, 220, 220, 255},
		OverlayMarker: color.RGBA{130, 151, 105, 255}, // Green dots
		Outline:       color.RGBA{20, 20, 20, 255},
	}
}

// hex formats c as an SVG color. Alpha is dropped.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Options controls diagram output.
type Options struct {
	// SquareSize is the edge of one square in pixels. Zero means 48.
	SquareSize int
	// Theme defaults to DefaultTheme().
	Theme *Theme
	// Overlay marks empty squares with a dot, like the '*' of the ASCII grid.
	Overlay board.Bitboard
}

const defaultSquareSize = 48

func (o Options) withDefaults() Options {
	if o.SquareSize <= 0 {
		o.SquareSize = defaultSquareSize
	}
	if o.Theme == nil {
		o.Theme = DefaultTheme()
	}
	return o
}
