package board

// Move encodes one piece relocation in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-14: piece kind
// bit 15:     capture flag
type Move uint16

const (
	moveKindShift = 12
	flagCapture   = Move(1) << 15
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a quiet move of a k piece.
func NewMove(k PieceKind, from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(k)<<moveKindShift
}

// NewCapture creates a move of a k piece that removes the piece on to.
func NewCapture(k PieceKind, from, to Square) Move {
	return NewMove(k, from, to) | flagCapture
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Kind returns the kind of the moving piece.
func (m Move) Kind() PieceKind {
	return PieceKind((m >> moveKindShift) & 7)
}

// IsCapture returns true if the destination holds a foreign piece.
func (m Move) IsCapture() bool {
	return m&flagCapture != 0
}

// String returns the move as played by the mover, e.g. "Pa2a4" or "Rd4xd7".
func (m Move) String() string {
	return m.Format(Mover)
}

// Format writes the move with the kind letter in the case the grid uses
// for s: "Pa2a4" for the mover, "pa7a5" for the opponent.
func (m Move) Format(s Side) string {
	if m == NoMove {
		return "0000"
	}
	sep := ""
	if m.IsCapture() {
		sep = "x"
	}
	return string(m.Kind().Symbol(s)) + m.From().String() + sep + m.To().String()
}

// MoveList is an ordered, growable list of moves.
type MoveList struct {
	moves []Move
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, 32)}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}
