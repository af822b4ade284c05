package board

import "testing"

func TestSquareIndex(t *testing.T) {
	tests := []struct {
		rank, file int
		want       Square
	}{
		{1, 1, 9},
		{0, 0, 0},
		{1, 0, 8},
		{0, 1, 1},
		{2, 2, 18},
		{2, 1, 17},
		{1, 2, 10},
		{0, 7, 7},
		{7, 0, 56},
		{7, 7, 63},
	}
	for _, tc := range tests {
		if got := NewSquare(tc.file, tc.rank); got != tc.want {
			t.Errorf("NewSquare(%d, %d) = %d, want %d", tc.file, tc.rank, got, tc.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	if err != nil || sq != E4 {
		t.Fatalf("ParseSquare(e4) = %v, %v", sq, err)
	}
	for _, bad := range []string{"", "e", "i1", "a9", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) accepted", bad)
		}
	}
	if E4.Mirror() != E5 || A1.Mirror() != A8 {
		t.Errorf("mirror of e4 is %v", E4.Mirror())
	}
}

func TestParseSquareSet(t *testing.T) {
	tests := []struct {
		in   string
		want Bitboard
	}{
		{"", Empty},
		{"c3", bit(C3)},
		{"c3,d4,c5", bit(C3) | bit(D4) | bit(C5)},
		{"c3 d4, c5", bit(C3) | bit(D4) | bit(C5)},
		{"a1,a1", bit(A1)},
	}
	for _, tc := range tests {
		got, err := ParseSquareSet(tc.in)
		if err != nil {
			t.Errorf("ParseSquareSet(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSquareSet(%q) = %#x, want %#x", tc.in, uint64(got), uint64(tc.want))
		}
	}
	if _, err := ParseSquareSet("c3,z9"); err == nil {
		t.Errorf("ParseSquareSet accepted z9")
	}
}

func TestStartLayout(t *testing.T) {
	tests := []struct {
		kind  PieceKind
		files []int
	}{
		{Rook, []int{0, 7}},
		{Knight, []int{1, 6}},
		{Bishop, []int{2, 5}},
		{Queen, []int{3}},
		{King, []int{4}},
	}

	for _, opponent := range []bool{false, true} {
		ps := NewPieceSet(opponent)
		pawns, backRank := Rank2, 0
		if opponent {
			pawns, backRank = Rank7, 7
		}
		if ps.Pieces(Pawn) != pawns {
			t.Errorf("opponent=%v: pawns %#x", opponent, uint64(ps.Pieces(Pawn)))
		}
		for _, tc := range tests {
			var want Bitboard
			for _, file := range tc.files {
				want = want.Set(NewSquare(file, backRank))
			}
			if got := ps.Pieces(tc.kind); got != want {
				t.Errorf("opponent=%v %v: got %#x, want %#x", opponent, tc.kind, uint64(got), uint64(want))
			}
		}
		if ps.Count() != 16 {
			t.Errorf("opponent=%v: %d pieces", opponent, ps.Count())
		}
	}

	if NewPieceSet(false).Occupancy()&NewPieceSet(true).Occupancy() != 0 {
		t.Errorf("start layouts overlap")
	}
}

func TestMoveBit(t *testing.T) {
	ps := NewPieceSet(false)
	if !ps.Pieces(Pawn).IsSet(B2) || ps.Pieces(Pawn).IsSet(B1) {
		t.Fatalf("unexpected start pawns")
	}

	ps.MoveBit(Pawn, B2, B1)
	if ps.Pieces(Pawn).IsSet(B2) || !ps.Pieces(Pawn).IsSet(B1) {
		t.Errorf("pawn did not move from b2 to b1")
	}
	if ps.Pieces(Pawn).PopCount() != 8 {
		t.Errorf("expected 8 pawns, got %d", ps.Pieces(Pawn).PopCount())
	}
	if !ps.Pieces(Knight).IsSet(B1) {
		t.Errorf("MoveBit touched another kind")
	}
}

func TestClearBit(t *testing.T) {
	ps := NewPieceSet(false)

	ps.ClearBit(Pawn, B2)
	if ps.Pieces(Pawn).IsSet(B2) || ps.Pieces(Pawn).PopCount() != 7 {
		t.Errorf("b2 pawn not cleared")
	}

	// Clearing an empty square is a no-op.
	ps.ClearBit(Pawn, B1)
	if ps.Pieces(Pawn).PopCount() != 7 || !ps.Pieces(Knight).IsSet(B1) {
		t.Errorf("clearing an empty pawn square changed the set")
	}
}

func TestClearAllKinds(t *testing.T) {
	ps := NewPieceSet(false)
	for _, sq := range []Square{A1, B1, C1, D1, E1, E2} {
		ps.ClearAllKinds(sq)
		if ps.Occupancy().IsSet(sq) {
			t.Errorf("%v still occupied", sq)
		}
	}
	if ps.Count() != 10 {
		t.Errorf("expected 10 pieces left, got %d", ps.Count())
	}
	if ps.Pieces(King) != Empty {
		t.Errorf("king survived ClearAllKinds")
	}
}

func TestKindAt(t *testing.T) {
	ps := NewPieceSet(true)
	tests := map[Square]PieceKind{
		A8: Rook, B8: Knight, C8: Bishop, D8: Queen, E8: King, H7: Pawn, E4: NoPieceKind,
	}
	for sq, want := range tests {
		if got := ps.KindAt(sq); got != want {
			t.Errorf("KindAt(%v) = %v, want %v", sq, got, want)
		}
	}
}

func TestCloneLeavesParent(t *testing.T) {
	f := StartFrame()
	orig := f

	moved := f.CloneWithMoverMove(Pawn, E2, E4)
	if f != orig {
		t.Fatalf("CloneWithMoverMove modified the receiver")
	}
	if !moved.Mover.Pieces(Pawn).IsSet(E4) || moved.Opponent != f.Opponent {
		t.Errorf("mover move not applied")
	}

	moved = f.CloneWithOpponentMove(Pawn, E7, E5)
	if f != orig {
		t.Fatalf("CloneWithOpponentMove modified the receiver")
	}
	if !moved.Opponent.Pieces(Pawn).IsSet(E5) || moved.Mover != f.Mover {
		t.Errorf("opponent move not applied")
	}
}

func TestApplyCapture(t *testing.T) {
	var f Frame
	f.Opponent.SetPieces(Rook, bit(D4))
	f.Opponent.SetPieces(Pawn, bit(D7))

	next := f.Apply(Opponent, NewCapture(Rook, D4, D1))
	if next.Opponent.Pieces(Rook) != bit(D1) {
		t.Errorf("rook not moved")
	}

	f.Mover.SetPieces(Queen, bit(D1))
	next = f.Apply(Opponent, NewCapture(Rook, D4, D1))
	if next.Mover.Count() != 0 {
		t.Errorf("captured queen still on board")
	}
}

func TestMoveEncoding(t *testing.T) {
	m := NewCapture(Rook, D4, D7)
	if m.From() != D4 || m.To() != D7 || m.Kind() != Rook || !m.IsCapture() {
		t.Fatalf("decoded %v %v %v %v", m.From(), m.To(), m.Kind(), m.IsCapture())
	}
	if m.String() != "Rd4xd7" {
		t.Errorf("String() = %q", m.String())
	}
	if s := NewMove(Pawn, A2, A4).String(); s != "Pa2a4" {
		t.Errorf("String() = %q", s)
	}
	if s := NewCapture(Rook, D4, D1).Format(Opponent); s != "rd4xd1" {
		t.Errorf("Format(Opponent) = %q", s)
	}
	if NoMove.String() != "0000" {
		t.Errorf("NoMove.String() = %q", NoMove.String())
	}
}
