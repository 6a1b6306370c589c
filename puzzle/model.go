package puzzle

/*

Grid model and candidate tracking

*/

// A grid is the working state of one solve: the 81 cell values,
// the candidate mask of every empty cell, and the set of digits
// already placed in each of the 27 groups.  Grids are mutated in
// place by propagation and search and are never shared across
// solve calls.
//
// Invariant, maintained by place and unplace: the digits placed
// within every group are pairwise distinct, and for every empty
// cell the candidate mask equals FullSet minus the union of the
// digits placed in the cell's row, column, and box.
type grid struct {
	cells  [CellCount]uint8     // 0 for empty, else the fixed digit
	cand   [CellCount]DigitSet  // candidate masks; meaningful only while empty
	placed [GroupCount]DigitSet // digits already placed per group
	empty  int                  // count of empty cells
}

// newGrid builds the working state for an already-validated set
// of values.  Group masks are accumulated first, then every empty
// cell's candidate mask is derived from them.
func newGrid(values Values) *grid {
	g := &grid{}
	for i, v := range values {
		g.cells[i] = v
		if v == 0 {
			g.empty++
			continue
		}
		for _, gi := range cellGroups[i] {
			g.placed[gi] = g.placed[gi].Add(int(v))
		}
	}
	for i := range g.cells {
		if g.cells[i] == 0 {
			g.cand[i] = g.derivedCand(i)
		}
	}
	return g
}

// derivedCand computes a cell's candidate mask from the group
// masks alone.
func (g *grid) derivedCand(idx int) DigitSet {
	gs := cellGroups[idx]
	return FullSet.Minus(g.placed[gs[0]] | g.placed[gs[1]] | g.placed[gs[2]])
}

// place fixes a digit into an empty cell, updates the three
// owning groups, and removes the digit from the candidate masks
// of all empty peers.  It returns false if some empty peer is
// left with no candidates, which means the grid has reached a
// contradiction; the placement is still fully applied, so the
// caller can unwind it with unplace.  This is a status for
// backtracking, not an error.
func (g *grid) place(idx, digit int) bool {
	g.cells[idx] = uint8(digit)
	g.empty--
	for _, gi := range cellGroups[idx] {
		g.placed[gi] = g.placed[gi].Add(digit)
	}
	ok := true
	for _, pi := range cellPeers[idx] {
		if g.cells[pi] != 0 {
			continue
		}
		g.cand[pi] = g.cand[pi].Remove(digit)
		if g.cand[pi] == EmptySet {
			ok = false
		}
	}
	return ok
}

// unplace is the exact inverse of place, used only during
// backtrack restoration.  It clears the cell, removes its digit
// from the three owning groups, and recomputes the candidate
// masks of the cell and its empty peers from the group masks.
func (g *grid) unplace(idx int) {
	digit := int(g.cells[idx])
	g.cells[idx] = 0
	g.empty++
	for _, gi := range cellGroups[idx] {
		g.placed[gi] = g.placed[gi].Remove(digit)
	}
	g.cand[idx] = g.derivedCand(idx)
	for _, pi := range cellPeers[idx] {
		if g.cells[pi] == 0 {
			g.cand[pi] = g.derivedCand(pi)
		}
	}
}

// solved reports whether every cell is filled.
func (g *grid) solved() bool {
	return g.empty == 0
}

// values returns a copy of the grid's cell values.
func (g *grid) values() Values {
	return g.cells
}
