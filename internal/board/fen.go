package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the placement field of the starting frame.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement parses the piece placement field of a FEN string into a
// Frame. Uppercase letters are mover pieces, lowercase letters opponent
// pieces. Any fields after the first are ignored.
func ParsePlacement(s string) (Frame, error) {
	var f Frame

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return f, fmt.Errorf("invalid placement: empty")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return f, fmt.Errorf("invalid placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // placement starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return f, fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			k, side, ok := KindFromSymbol(c)
			if !ok {
				return f, fmt.Errorf("invalid piece character: %c", c)
			}
			ps := f.Side(side)
			ps.SetPieces(k, ps.Pieces(k).Set(NewSquare(file, rank)))
			file++
		}

		if file != 8 {
			return f, fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return f, nil
}

// Placement returns the FEN placement field of the frame.
func (f Frame) Placement() string {
	var sb strings.Builder
	symbols := f.Render()

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := symbols[NewSquare(file, rank)]
			if c == '.' {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
