package board

// Side names which PieceSet of a Frame is acting.
type Side uint8

const (
	Mover Side = iota
	Opponent
)

// Other returns the opposite side.
func (s Side) Other() Side {
	return s ^ 1
}

// String returns the side name.
func (s Side) String() string {
	if s == Mover {
		return "mover"
	}
	return "opponent"
}

// ParseSide accepts "mover" and "opponent".
func ParseSide(s string) (Side, bool) {
	switch s {
	case "mover", "":
		return Mover, true
	case "opponent":
		return Opponent, true
	}
	return Mover, false
}

// PieceKind selects one of the six occupancy maps of a PieceSet.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind PieceKind = 6
)

// NumKinds is the number of piece kinds carried by a PieceSet.
const NumKinds = int(NoPieceKind)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Symbol returns the letter drawn for the kind: uppercase for the mover,
// lowercase for the opponent.
func (k PieceKind) Symbol(s Side) byte {
	if k >= NoPieceKind {
		return '.'
	}
	c := "PNBRQK"[k]
	if s == Opponent {
		c += 'a' - 'A'
	}
	return c
}

// KindFromSymbol converts a piece letter back to its kind and side.
func KindFromSymbol(c byte) (PieceKind, Side, bool) {
	s := Mover
	if c >= 'a' && c <= 'z' {
		s = Opponent
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, s, true
	case 'N':
		return Knight, s, true
	case 'B':
		return Bishop, s, true
	case 'R':
		return Rook, s, true
	case 'Q':
		return Queen, s, true
	case 'K':
		return King, s, true
	}
	return NoPieceKind, s, false
}
