package board

// Perft counts the frames reachable in exactly depth plies, with the
// sides alternating and side moving first.
func Perft(f Frame, side Side, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	if depth == 1 {
		return uint64(f.GenerateMoves(side).Len())
	}

	var nodes uint64
	for _, next := range f.Successors(side) {
		nodes += Perft(next, side.Other(), depth-1)
	}
	return nodes
}
