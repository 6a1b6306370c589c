package puzzle

/*

Search engine

Plain recursive depth-first search over the ambiguity left after
propagation.  At each depth the engine picks the empty cell with
the fewest candidates (minimum remaining values, ties broken by
lowest index) and tries its digits in ascending order, running
propagation to a fixpoint after every guess.  A contradiction
backtracks by unwinding the placement trail to the depth's mark;
exhausting every digit of the first branching cell means the
puzzle has no solution.

There is no randomization anywhere, so the same input always
walks the same tree.

*/

// A solver drives the search over one grid.  The trail records
// every placement made since the grid was built, in order, so any
// suffix of it can be unwound to restore an earlier state; frames
// are just marks into it and never outlive the search call that
// took them.
type solver struct {
	grid       *grid
	trail      []int
	guesses    int
	backtracks int
}

// newSolver wraps a freshly built grid.  The trail is sized for
// the worst case up front so search never reallocates it.
func newSolver(g *grid) *solver {
	return &solver{grid: g, trail: make([]int, 0, CellCount)}
}

// search extends the grid to a full solution, returning whether
// one was found.  On true the grid is solved; on false the grid
// is restored to its state at entry.
func (s *solver) search() bool {
	idx := s.selectCell()
	if idx < 0 {
		return true
	}
	for d := 1; d <= SideLen; d++ {
		if !s.grid.cand[idx].Has(d) {
			continue
		}
		mark := len(s.trail)
		s.guesses++
		if s.grid.placeLogged(idx, d, &s.trail) &&
			s.grid.propagate(&s.trail) &&
			s.search() {
			return true
		}
		s.rewind(mark)
		s.backtracks++
	}
	return false
}

// countSearch is search adapted to count solutions instead of
// stopping at the first one, up to the given limit.  The grid is
// always restored to its state at entry.
func (s *solver) countSearch(limit int) int {
	idx := s.selectCell()
	if idx < 0 {
		return 1
	}
	total := 0
	for d := 1; d <= SideLen && total < limit; d++ {
		if !s.grid.cand[idx].Has(d) {
			continue
		}
		mark := len(s.trail)
		if s.grid.placeLogged(idx, d, &s.trail) &&
			s.grid.propagate(&s.trail) {
			total += s.countSearch(limit - total)
		}
		s.rewind(mark)
	}
	return total
}

// selectCell picks the empty cell with the smallest candidate
// mask, lowest index first.  Returns -1 when no empty cell
// remains, which means the grid is solved.  After propagation no
// empty cell can have fewer than two candidates, so a cell with
// two is taken immediately.
func (s *solver) selectCell() int {
	best, bestCount := -1, SideLen+1
	for i := 0; i < CellCount; i++ {
		if s.grid.cells[i] != 0 {
			continue
		}
		count := s.grid.cand[i].Count()
		if count < bestCount {
			best, bestCount = i, count
			if count == 2 {
				break
			}
		}
	}
	return best
}

// rewind unwinds trail placements back to the given mark, in
// reverse order of application.
func (s *solver) rewind(mark int) {
	for len(s.trail) > mark {
		idx := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		s.grid.unplace(idx)
	}
}
