package board

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// EncodedFrameSize is the length of a binary-encoded Frame.
const EncodedFrameSize = 2 * NumKinds * 8

// ErrFrameEncoding is returned when decoding data of the wrong size.
var ErrFrameEncoding = errors.New("board: invalid frame encoding")

// MarshalBinary encodes the frame as twelve little-endian words: the
// mover's maps then the opponent's, each in PieceKind order.
func (f Frame) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, EncodedFrameSize)
	for s := Mover; s <= Opponent; s++ {
		ps := f.Side(s)
		for k := Pawn; k <= King; k++ {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(ps.Pieces(k)))
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes data written by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedFrameSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameEncoding, len(data), EncodedFrameSize)
	}
	var next Frame
	for s := Mover; s <= Opponent; s++ {
		ps := next.Side(s)
		for k := Pawn; k <= King; k++ {
			ps.SetPieces(k, Bitboard(binary.LittleEndian.Uint64(data)))
			data = data[8:]
		}
	}
	*f = next
	return nil
}
