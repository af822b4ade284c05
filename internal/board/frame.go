package board

// Frame is a position: the side to act ("mover") and the other side
// ("opponent"). A Frame carries no side-to-move flag or history; which
// set acts is chosen by the generation entry point.
//
// Frames are values. Assigning or returning one copies both PieceSets,
// so successors never alias their parent.
type Frame struct {
	Mover    PieceSet
	Opponent PieceSet
}

// NewFrame creates a frame from two piece sets.
func NewFrame(mover, opponent PieceSet) Frame {
	return Frame{Mover: mover, Opponent: opponent}
}

// StartFrame returns both sides in the standard starting layout.
func StartFrame() Frame {
	return NewFrame(NewPieceSet(false), NewPieceSet(true))
}

// DemoFrame returns the frame the demonstration driver prints: two mover
// rooks on c4 and f4 facing the opponent's starting layout.
func DemoFrame() Frame {
	var mover PieceSet
	mover.SetPieces(Rook, SquareBB(C4)|SquareBB(F4))
	return NewFrame(mover, NewPieceSet(true))
}

// DemoOverlay marks c3, d4 and c5, the squares the demonstration driver
// highlights on DemoFrame.
const DemoOverlay = Bitboard(1)<<C3 | Bitboard(1)<<D4 | Bitboard(1)<<C5

// Side returns a pointer to the piece set of s.
func (f *Frame) Side(s Side) *PieceSet {
	if s == Mover {
		return &f.Mover
	}
	return &f.Opponent
}

// Occupancy returns every occupied square.
func (f Frame) Occupancy() Bitboard {
	return f.Mover.Occupancy() | f.Opponent.Occupancy()
}

// CloneWithMoverMove returns a copy of f with the mover's k piece moved.
// f is unchanged.
func (f Frame) CloneWithMoverMove(k PieceKind, from, to Square) Frame {
	f.Mover.MoveBit(k, from, to)
	return f
}

// CloneWithOpponentMove returns a copy of f with the opponent's k piece
// moved. f is unchanged.
func (f Frame) CloneWithOpponentMove(k PieceKind, from, to Square) Frame {
	f.Opponent.MoveBit(k, from, to)
	return f
}

// Apply returns the successor produced by side playing m. For a capture,
// the destination is cleared from every map of the other side.
func (f Frame) Apply(side Side, m Move) Frame {
	var next Frame
	if side == Mover {
		next = f.CloneWithMoverMove(m.Kind(), m.From(), m.To())
	} else {
		next = f.CloneWithOpponentMove(m.Kind(), m.From(), m.To())
	}
	if m.IsCapture() {
		next.Side(side.Other()).ClearAllKinds(m.To())
	}
	return next
}
