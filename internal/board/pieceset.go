package board

// PieceSet is one side's occupancy: one Bitboard per PieceKind.
//
// A square is set in at most one map of a set, and a square is never set
// in both sets of a Frame. Neither property is checked; every mutator
// below preserves it as long as the caller passes on-board squares and
// moves pieces onto squares the set does not already hold.
type PieceSet struct {
	pieces [NumKinds]Bitboard
}

// NewPieceSet returns the standard starting layout. The opponent layout is
// the mover layout mirrored across the horizontal midline.
func NewPieceSet(opponent bool) PieceSet {
	var ps PieceSet
	ps.pieces[Pawn] = Rank2
	ps.pieces[Rook] = SquareBB(A1) | SquareBB(H1)
	ps.pieces[Knight] = SquareBB(B1) | SquareBB(G1)
	ps.pieces[Bishop] = SquareBB(C1) | SquareBB(F1)
	ps.pieces[Queen] = SquareBB(D1)
	ps.pieces[King] = SquareBB(E1)

	if opponent {
		for k := range ps.pieces {
			ps.pieces[k] = mirror(ps.pieces[k])
		}
	}
	return ps
}

// mirror reflects every square of bb with Square.Mirror.
func mirror(bb Bitboard) Bitboard {
	var out Bitboard
	for bb != 0 {
		out = out.Set(bb.PopLSB().Mirror())
	}
	return out
}

// Pieces returns the map for kind k.
func (ps PieceSet) Pieces(k PieceKind) Bitboard {
	return ps.pieces[k]
}

// SetPieces replaces the map for kind k.
func (ps *PieceSet) SetPieces(k PieceKind, bb Bitboard) {
	ps.pieces[k] = bb
}

// Occupancy returns the union of all six maps.
func (ps PieceSet) Occupancy() Bitboard {
	return ps.pieces[Pawn] | ps.pieces[Knight] | ps.pieces[Bishop] |
		ps.pieces[Rook] | ps.pieces[Queen] | ps.pieces[King]
}

// Count returns the number of pieces in the set.
func (ps PieceSet) Count() int {
	return ps.Occupancy().PopCount()
}

// KindAt returns the kind standing on sq, or NoPieceKind.
func (ps PieceSet) KindAt(sq Square) PieceKind {
	bb := SquareBB(sq)
	for k := Pawn; k <= King; k++ {
		if ps.pieces[k]&bb != 0 {
			return k
		}
	}
	return NoPieceKind
}

// MoveBit clears from and sets to in the map for k only.
// from is not required to be occupied and to is not required to be empty.
func (ps *PieceSet) MoveBit(k PieceKind, from, to Square) {
	ps.pieces[k] = ps.pieces[k].Clear(from).Set(to)
}

// ClearBit clears sq in the map for k.
func (ps *PieceSet) ClearBit(k PieceKind, sq Square) {
	ps.pieces[k] = ps.pieces[k].Clear(sq)
}

// ClearAllKinds clears sq in every map. A capture uses it to remove
// whatever stands on the destination.
func (ps *PieceSet) ClearAllKinds(sq Square) {
	mask := ^SquareBB(sq)
	for k := range ps.pieces {
		ps.pieces[k] &= mask
	}
}
