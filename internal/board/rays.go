package board

// direction is one step of a ray. mask is applied to the ray front before
// each shift and drops the edge file the step would wrap from.
type direction struct {
	step int
	mask Bitboard
}

// Rook directions in emission order: forward, backward, rightward, leftward.
var rookDirections = [4]direction{
	{step: 8, mask: Universe},
	{step: -8, mask: Universe},
	{step: 1, mask: NotFileH},
	{step: -1, mask: NotFileA},
}

// rayHit is one step of a ray walk: the squares reached at that step and
// the signed distance back to the origin of each of them.
type rayHit struct {
	targets  Bitboard
	distance int
}

// origin returns the square the ray reaching to started from.
func (h rayHit) origin(to Square) Square {
	return Square(int(to) - h.distance)
}

// walkRays extends every origin along each direction at once. A step
// records the squares not held by own; the front only continues through
// empty squares, so a ray ends on its first occupied square whether that
// square was a capture or a block.
//
// The result is indexed like dirs.
func walkRays(origins, own, empty Bitboard, dirs []direction) [][]rayHit {
	hits := make([][]rayHit, len(dirs))
	for i, d := range dirs {
		front := origins
		distance := 0
		for front != 0 {
			front = (front & d.mask).Shift(d.step)
			distance += d.step
			if targets := front &^ own; targets != 0 {
				hits[i] = append(hits[i], rayHit{targets: targets, distance: distance})
			}
			front &= empty
		}
	}
	return hits
}

// rayTargets returns the union of every recorded square.
func rayTargets(hits [][]rayHit) Bitboard {
	var all Bitboard
	for _, dir := range hits {
		for _, h := range dir {
			all |= h.targets
		}
	}
	return all
}
