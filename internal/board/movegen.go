package board

// pawnGeometry holds the shifts a side's pawns use. The opponent's
// geometry mirrors the mover's.
type pawnGeometry struct {
	forward    int
	doubleGate Bitboard // single-push squares a double push may continue from
	captures   [2]direction
}

var pawnGeometries = [2]pawnGeometry{
	Mover: {
		forward:    8,
		doubleGate: Rank3,
		captures:   [2]direction{{step: 9, mask: NotFileH}, {step: 7, mask: NotFileA}},
	},
	Opponent: {
		forward:    -8,
		doubleGate: Rank6,
		captures:   [2]direction{{step: -9, mask: NotFileA}, {step: -7, mask: NotFileH}},
	},
}

// pawnTargets are the candidate destination sets of one side's pawns.
type pawnTargets struct {
	push1, push2 Bitboard
	captures     [2]Bitboard
}

func (pt pawnTargets) all() Bitboard {
	return pt.push1 | pt.captures[0] | pt.captures[1]
}

// generatePawnTargets computes single pushes, double pushes and both
// diagonal captures for pawns.
func generatePawnTargets(g pawnGeometry, pawns, empty, foreign Bitboard) pawnTargets {
	var pt pawnTargets
	pt.push1 = pawns.Shift(g.forward) & empty
	pt.push2 = (pt.push1 & g.doubleGate).Shift(g.forward) & empty
	for i, c := range g.captures {
		pt.captures[i] = (pawns & c.mask).Shift(c.step) & foreign
	}
	return pt
}

// GenerateMoves returns every pseudo-legal pawn and rook move of side.
//
// Moves are ordered by destination square, ascending. For one destination
// the order is: pawn single push, directly followed by the double push of
// the same pawn; the two pawn captures; rook moves by direction (forward,
// backward, rightward, leftward) and distance. Knights, bishops, queens
// and kings never move; they only block and can be captured.
func (f Frame) GenerateMoves(side Side) *MoveList {
	own := f.Side(side).Occupancy()
	foreign := f.Side(side.Other()).Occupancy()
	empty := ^(own | foreign)

	g := pawnGeometries[side]
	pawns := generatePawnTargets(g, f.Side(side).Pieces(Pawn), empty, foreign)
	rooks := walkRays(f.Side(side).Pieces(Rook), own, empty, rookDirections[:])

	ml := NewMoveList()
	candidates := pawns.all() | rayTargets(rooks)
	for candidates != 0 {
		to := candidates.PopLSB()
		toBB := SquareBB(to)

		if pawns.push1&toBB != 0 {
			from := Square(int(to) - g.forward)
			ml.Add(NewMove(Pawn, from, to))
			if double := toBB.Shift(g.forward); pawns.push2&double != 0 {
				ml.Add(NewMove(Pawn, from, double.LSB()))
			}
		}
		for i, c := range g.captures {
			if pawns.captures[i]&toBB != 0 {
				ml.Add(NewCapture(Pawn, Square(int(to)-c.step), to))
			}
		}

		capture := foreign&toBB != 0
		for _, dir := range rooks {
			for _, h := range dir {
				if h.targets&toBB == 0 {
					continue
				}
				if capture {
					ml.Add(NewCapture(Rook, h.origin(to), to))
				} else {
					ml.Add(NewMove(Rook, h.origin(to), to))
				}
			}
		}
	}
	return ml
}

// Successors returns one frame per move of side, in GenerateMoves order.
func (f Frame) Successors(side Side) []Frame {
	ml := f.GenerateMoves(side)
	frames := make([]Frame, 0, ml.Len())
	for _, m := range ml.Slice() {
		frames = append(frames, f.Apply(side, m))
	}
	return frames
}

// NextFrames returns the successors of the mover.
func (f Frame) NextFrames() []Frame {
	return f.Successors(Mover)
}

// OpponentNextFrames returns the successors of the opponent, generated with
// mirrored shift directions.
func (f Frame) OpponentNextFrames() []Frame {
	return f.Successors(Opponent)
}
