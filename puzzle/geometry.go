package puzzle

/*

Puzzle geometry

The standard 9x9 geometry is fixed: 81 cells, 9 rows, 9 columns,
and 9 boxes.  The tables that relate cells to their groups and
peers never change, so they are computed once at package
initialization and shared by every grid.

*/

import (
	"fmt"
)

// Geometry parameters for the standard puzzle.
const (
	SideLen    = 9                 // cells per group
	TileLen    = 3                 // side of a box
	CellCount  = SideLen * SideLen // cells in a grid
	GroupCount = 3 * SideLen       // rows + columns + boxes
	PeerCount  = 20                // distinct cells sharing a group with a cell
)

// Group index layout: rows are groups 0-8, columns 9-17, boxes 18-26.
const (
	rowGroupBase = 0
	colGroupBase = SideLen
	boxGroupBase = 2 * SideLen
)

// A GroupID names a row, column, or box for reporting purposes.
// The index is 1-based, matching the way humans talk about grids.
type GroupID struct {
	Gtype string `json:"gtype"`
	Index int    `json:"index"`
}

// Group type constants.  These are human-readable but not
// localized.
const (
	GtypeRow = "row"
	GtypeCol = "column"
	GtypeBox = "box"
)

// GroupIDs implement Stringer
func (gid GroupID) String() string {
	if gid.Gtype == "" {
		return fmt.Sprintf("<group> %d", gid.Index)
	}
	return fmt.Sprintf("%s %d", gid.Gtype, gid.Index)
}

// rowOf, colOf, and boxOf map a cell index to the 0-based number
// of its containing row, column, and box.
func rowOf(idx int) int { return idx / SideLen }
func colOf(idx int) int { return idx % SideLen }
func boxOf(idx int) int {
	return (rowOf(idx)/TileLen)*TileLen + colOf(idx)/TileLen
}

// groupID returns the reporting name of a group index.
func groupID(g int) GroupID {
	switch {
	case g < colGroupBase:
		return GroupID{GtypeRow, g - rowGroupBase + 1}
	case g < boxGroupBase:
		return GroupID{GtypeCol, g - colGroupBase + 1}
	default:
		return GroupID{GtypeBox, g - boxGroupBase + 1}
	}
}

// The shared geometry tables.
var (
	// groupCells enumerates the cell indices of each group, in
	// ascending order.
	groupCells [GroupCount][SideLen]int
	// cellGroups gives the three groups containing each cell, in
	// row, column, box order.
	cellGroups [CellCount][3]int
	// cellPeers gives the other cells sharing a group with each
	// cell, in ascending order without duplicates.
	cellPeers [CellCount][PeerCount]int
)

func init() {
	var counts [GroupCount]int
	for i := 0; i < CellCount; i++ {
		gs := [3]int{
			rowGroupBase + rowOf(i),
			colGroupBase + colOf(i),
			boxGroupBase + boxOf(i),
		}
		cellGroups[i] = gs
		for _, g := range gs {
			groupCells[g][counts[g]] = i
			counts[g]++
		}
	}
	for i := 0; i < CellCount; i++ {
		n := 0
		for j := 0; j < CellCount; j++ {
			if j == i {
				continue
			}
			if rowOf(j) == rowOf(i) || colOf(j) == colOf(i) || boxOf(j) == boxOf(i) {
				cellPeers[i][n] = j
				n++
			}
		}
	}
}
