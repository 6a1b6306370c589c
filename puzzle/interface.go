// Package puzzle implements a solving engine for standard 9x9
// Sudoku puzzles.
//
// In this package, puzzles are made of cells which are either
// empty (represented with a 0 value) or hold a digit between 1
// and 9.  The cells are designated by indices that start at 0 and
// increase left-to-right, top-to-bottom (English reading order).
// Every cell belongs to exactly three groups: its row, its
// column, and its 3x3 box.  A solved puzzle has every cell filled
// and every group containing each digit exactly once.
//
// For each empty cell, the implementation maintains a bitmask of
// candidate digits the cell can still take without conflicting
// with the cells already placed in its groups.  Solving first
// applies constraint propagation (naked and hidden singles) to a
// fixpoint, then falls back to depth-first search over the
// remaining ambiguity, propagating again after every guess.  The
// whole process is deterministic: the same input always produces
// the same output or the same error.
package puzzle

import (
	"time"
)

// Values is the fixed-size container for a puzzle's cell values,
// in row-major order (index = row*9 + col).  A 0 entry means an
// empty cell; entries 1 through 9 are fixed digits.  Inputs are
// validated once at this boundary; the engine never reads cell
// values from any other shape.
type Values [CellCount]uint8

// A Result is a successful solve: the completed grid plus the
// search effort it took to reach it.  Guesses counts speculative
// placements made by the search engine; a puzzle solved purely by
// propagation reports zero guesses.
type Result struct {
	Values     Values `json:"values"`
	Guesses    int    `json:"guesses"`
	Backtracks int    `json:"backtracks"`
}

// Solve maps a puzzle to its completed grid.  It is a pure
// function of its input: no state is retained across calls, and
// on failure no partial grid is returned.  The returned error is
// always an Error value whose Kind is one of InvalidInputKind,
// ContradictoryInputKind, or UnsolvableKind.
//
// When a puzzle admits more than one completion, Solve returns
// the first solution in canonical branch order (lowest cell
// index, ascending digits); use CountSolutions to detect
// ambiguity.
func Solve(values Values) (Values, error) {
	res, err := SolveDetail(values)
	if err != nil {
		return Values{}, err
	}
	return res.Values, nil
}

// SolveDetail is Solve plus search statistics.
func SolveDetail(values Values) (Result, error) {
	if err := Validate(values); err != nil {
		return Result{}, err
	}
	s := newSolver(newGrid(values))
	if !s.grid.propagate(&s.trail) {
		return Result{}, unsolvableError()
	}
	if !s.search() {
		return Result{}, unsolvableError()
	}
	return Result{
		Values:     s.grid.values(),
		Guesses:    s.guesses,
		Backtracks: s.backtracks,
	}, nil
}

// CountSolutions reports how many distinct completions a puzzle
// has, stopping as soon as limit solutions are found.  A limit of
// 2 is enough to distinguish unsolvable (0), proper (1), and
// ambiguous (2) puzzles.  Input validation errors are reported
// the same way as for Solve; an unsolvable puzzle is not an error
// here, it simply counts 0.
func CountSolutions(values Values, limit int) (int, error) {
	if err := Validate(values); err != nil {
		return 0, err
	}
	if limit < 1 {
		limit = 1
	}
	s := newSolver(newGrid(values))
	if !s.grid.propagate(&s.trail) {
		return 0, nil
	}
	return s.countSearch(limit), nil
}

// A SolutionCache lets the solve handler reuse previously
// computed solutions.  Implementations must be safe for
// concurrent use; the engine itself never retains one.
type SolutionCache interface {
	Lookup(signature string) (Result, bool)
	Store(signature string, result Result, elapsed time.Duration)
}
