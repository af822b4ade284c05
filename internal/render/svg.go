package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/bitframe/internal/board"
)

// cell is one square of the diagram in pixel space.
type cell struct {
	sq     board.Square
	x, y   int
	symbol byte
}

// cells lays out the frame with row 0 (squares a1..h1) at the top,
// the same orientation as the ASCII grid.
func cells(f board.Frame, opts Options) [64]cell {
	symbols := f.RenderOverlay(opts.Overlay)
	var out [64]cell
	for i := 0; i < 64; i++ {
		sq := board.Square(i)
		out[i] = cell{
			sq:     sq,
			x:      sq.File() * opts.SquareSize,
			y:      sq.Rank() * opts.SquareSize,
			symbol: symbols[i],
		}
	}
	return out
}

func squareColor(sq board.Square, t *Theme) string {
	if (sq.Rank()+sq.File())%2 == 0 {
		return hex(t.DarkSquare)
	}
	return hex(t.LightSquare)
}

// pieceColors returns fill and ink for a rendered symbol.
func pieceColors(symbol byte, t *Theme) (fill, ink string) {
	if symbol >= 'a' && symbol <= 'z' {
		return hex(t.OpponentFill), hex(t.OpponentInk)
	}
	return hex(t.MoverFill), hex(t.MoverInk)
}

// WriteSVG writes an SVG diagram of f to w.
func WriteSVG(w io.Writer, f board.Frame, opts Options) error {
	opts = opts.withDefaults()
	return writeSVG(w, f, opts, true)
}

// writeSVG draws the board. Labels are text elements, which the PNG
// rasterizer does not understand, so it asks for them to be left out.
func writeSVG(w io.Writer, f board.Frame, opts Options, labels bool) error {
	ew := &errWriter{w: w}
	size := 8 * opts.SquareSize
	t := opts.Theme
	radius := opts.SquareSize * 2 / 5
	half := opts.SquareSize / 2

	canvas := svg.New(ew)
	canvas.Startview(size, size, 0, 0, size, size)
	for _, c := range cells(f, opts) {
		canvas.Rect(c.x, c.y, opts.SquareSize, opts.SquareSize, "fill:"+squareColor(c.sq, t))

		switch c.symbol {
		case '.':
		case board.OverlaySymbol:
			canvas.Circle(c.x+half, c.y+half, opts.SquareSize/8, "fill:"+hex(t.OverlayMarker))
		default:
			fill, ink := pieceColors(c.symbol, t)
			canvas.Circle(c.x+half, c.y+half, radius,
				fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", fill, hex(t.Outline)))
			if labels {
				canvas.Text(c.x+half, c.y+half+opts.SquareSize/6, string(c.symbol),
					fmt.Sprintf("fill:%s;font-family:monospace;font-size:%dpx;text-anchor:middle", ink, opts.SquareSize/2))
			}
		}
	}
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
