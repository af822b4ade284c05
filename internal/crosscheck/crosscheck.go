// Package crosscheck compares generated rook destinations against the
// magic-bitboard tables of dragontoothmg.
package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/bitframe/internal/board"
)

// Mismatch describes a rook whose generated destinations differ from
// the reference.
type Mismatch struct {
	Side      board.Side
	From      board.Square
	Generated board.Bitboard
	Reference board.Bitboard
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%v rook %v: generated %#016x, reference %#016x (missing %#016x, extra %#016x)",
		m.Side, m.From, uint64(m.Generated), uint64(m.Reference),
		uint64(m.Reference&^m.Generated), uint64(m.Generated&^m.Reference))
}

// Rooks checks every rook of side in f. An empty result means the
// generator agrees with the reference.
func Rooks(f board.Frame, side board.Side) []Mismatch {
	generated := make(map[board.Square]board.Bitboard)
	for _, m := range f.GenerateMoves(side).Slice() {
		if m.Kind() == board.Rook {
			generated[m.From()] |= board.SquareBB(m.To())
		}
	}

	own := f.Side(side).Occupancy()
	occ := uint64(f.Occupancy())

	var out []Mismatch
	for _, sq := range f.Side(side).Pieces(board.Rook).Squares() {
		ref := board.Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)) &^ own
		if got := generated[sq]; got != ref {
			out = append(out, Mismatch{Side: side, From: sq, Generated: got, Reference: ref})
		}
	}
	return out
}

// Frame checks the rooks of both sides.
func Frame(f board.Frame) []Mismatch {
	return append(Rooks(f, board.Mover), Rooks(f, board.Opponent)...)
}
