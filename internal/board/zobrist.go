package board

// Zobrist keys for frame hashing.
// Uses a PRNG with a fixed seed so hashes are stable across runs and can
// key persisted frames.
var zobristPiece [2][NumKinds][64]uint64 // [Side][PieceKind][Square]

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for s := Mover; s <= Opponent; s++ {
		for k := Pawn; k <= King; k++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[s][k][sq] = rng.next()
			}
		}
	}
}

// Hash computes the Zobrist hash of the frame from scratch.
func (f Frame) Hash() uint64 {
	var hash uint64
	for s := Mover; s <= Opponent; s++ {
		ps := f.Side(s)
		for k := Pawn; k <= King; k++ {
			bb := ps.Pieces(k)
			for bb != 0 {
				hash ^= zobristPiece[s][k][bb.PopLSB()]
			}
		}
	}
	return hash
}

// HashAfter returns the hash of f.Apply(side, m) given h = f.Hash(),
// without building the successor.
func (f Frame) HashAfter(h uint64, side Side, m Move) uint64 {
	h ^= zobristPiece[side][m.Kind()][m.From()]
	h ^= zobristPiece[side][m.Kind()][m.To()]
	if m.IsCapture() {
		other := side.Other()
		if k := f.Side(other).KindAt(m.To()); k != NoPieceKind {
			h ^= zobristPiece[other][k][m.To()]
		}
	}
	return h
}
