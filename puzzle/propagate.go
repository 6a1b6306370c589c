package puzzle

/*

Constraint propagation

Two inference rules are applied, the same ones most human solvers
use first:

- Naked single: an empty cell whose candidate mask is a singleton
  must hold that digit.

- Hidden single: if a digit not yet placed in a group has exactly
  one empty cell in that group that can hold it, that cell must
  hold that digit.

Forced moves are confluent, so the order they are applied in does
not affect the outcome; the fixed scan order below (ascending
cell index, then groups in row/column/box order with digits
ascending) keeps solve traces reproducible.

*/

// propagate runs forced placements to a fixpoint.  Every
// placement is appended to the trail so the caller can unwind it
// later.  It returns false as soon as a contradiction is found:
// an empty cell with no candidates, a digit with no home in some
// group, or a placement that empties a peer's mask.
func (g *grid) propagate(trail *[]int) bool {
	for {
		changed := false

		// naked singles
		for i := 0; i < CellCount; i++ {
			if g.cells[i] != 0 {
				continue
			}
			switch {
			case g.cand[i] == EmptySet:
				return false
			case g.cand[i].IsSingle():
				if !g.placeLogged(i, g.cand[i].Lowest(), trail) {
					return false
				}
				changed = true
			}
		}

		// hidden singles
		for gi := 0; gi < GroupCount; gi++ {
			for d := 1; d <= SideLen; d++ {
				if g.placed[gi].Has(d) {
					continue
				}
				count, last := 0, -1
				for _, ci := range groupCells[gi] {
					if g.cells[ci] == 0 && g.cand[ci].Has(d) {
						count++
						last = ci
					}
				}
				switch count {
				case 0:
					return false
				case 1:
					if !g.placeLogged(last, d, trail) {
						return false
					}
					changed = true
				}
			}
		}

		if !changed {
			return true
		}
	}
}

// placeLogged places a digit and records the cell on the trail.
// The record is made even when the placement signals a
// contradiction, because the placement has still been applied and
// must be unwound with the rest.
func (g *grid) placeLogged(idx, digit int, trail *[]int) bool {
	*trail = append(*trail, idx)
	return g.place(idx, digit)
}
