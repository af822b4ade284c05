package board

import "strings"

// OverlaySymbol marks an empty overlay square in RenderOverlay.
const OverlaySymbol = '*'

// renderPriority is the order kinds are tested in for each square.
var renderPriority = [NumKinds]PieceKind{Pawn, Rook, Knight, Bishop, Queen, King}

// Render returns one symbol per square, index 0 first. Mover pieces are
// uppercase, opponent pieces lowercase, empty squares '.'.
//
// If the no-overlap invariant is broken, the first match in render
// priority hides the rest.
func (f Frame) Render() [64]byte {
	return f.RenderOverlay(Empty)
}

// RenderOverlay is Render with the empty squares of overlay drawn as
// OverlaySymbol. The overlay is display-only; it never takes part in move
// generation.
func (f Frame) RenderOverlay(overlay Bitboard) [64]byte {
	var out [64]byte
	for sq := A1; sq <= H8; sq++ {
		out[sq] = f.symbolAt(sq, overlay)
	}
	return out
}

func (f Frame) symbolAt(sq Square, overlay Bitboard) byte {
	bb := SquareBB(sq)
	for _, k := range renderPriority {
		if f.Mover.Pieces(k)&bb != 0 {
			return k.Symbol(Mover)
		}
		if f.Opponent.Pieces(k)&bb != 0 {
			return k.Symbol(Opponent)
		}
	}
	if overlay&bb != 0 {
		return OverlaySymbol
	}
	return '.'
}

// Grid wraps a rendered frame into 8 rows; row 0 holds squares 0-7.
func Grid(symbols [64]byte) [8]string {
	var rows [8]string
	for r := range rows {
		rows[r] = string(symbols[r*8 : r*8+8])
	}
	return rows
}

// String returns the rendered grid, one row per line.
func (f Frame) String() string {
	return f.OverlayString(Empty)
}

// OverlayString is String drawn with RenderOverlay.
func (f Frame) OverlayString(overlay Bitboard) string {
	rows := Grid(f.RenderOverlay(overlay))
	return strings.Join(rows[:], "\n") + "\n"
}
