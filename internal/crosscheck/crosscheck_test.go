package crosscheck

import (
	"testing"

	"github.com/hailam/bitframe/internal/board"
)

func TestRooksAgree(t *testing.T) {
	tests := []struct {
		name      string
		placement string
	}{
		{"start", board.StartPlacement},
		{"demo", board.DemoFrame().Placement()},
		{"lone rook", "8/8/8/3R4/8/8/8/8"},
		{"corners", "R6R/8/8/8/8/8/8/r6r"},
		{"shared ray", "R7/8/8/8/R7/8/8/8"},
		{"crowded", "1p1p4/pRp5/1p6/8/4r3/3PrP2/4P3/8"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := board.ParsePlacement(tc.placement)
			if err != nil {
				t.Fatalf("ParsePlacement(%q): %v", tc.placement, err)
			}
			for _, m := range Frame(f) {
				t.Errorf("%v", m)
			}
		})
	}
}

func TestSuccessorsAgree(t *testing.T) {
	for _, f := range board.DemoFrame().NextFrames() {
		for _, m := range Frame(f) {
			t.Errorf("%s: %v", f.Placement(), m)
		}
	}
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{
		Side:      board.Mover,
		From:      board.A1,
		Generated: board.SquareBB(board.A2),
		Reference: board.SquareBB(board.A2) | board.SquareBB(board.B1),
	}
	want := "mover rook a1: generated 0x0000000000000100, reference 0x0000000000000102 (missing 0x0000000000000002, extra 0x0000000000000000)"
	if got := m.String(); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}
