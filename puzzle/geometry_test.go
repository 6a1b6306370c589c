package puzzle

import (
	"testing"
)

func TestGroupShapes(t *testing.T) {
	// every group holds nine distinct cells in ascending order
	for gi := 0; gi < GroupCount; gi++ {
		for i := 1; i < SideLen; i++ {
			if groupCells[gi][i] <= groupCells[gi][i-1] {
				t.Errorf("group %v cells not ascending: %v", groupID(gi), groupCells[gi])
				break
			}
		}
	}
	// every cell appears in exactly three groups: its row, its
	// column, and its box
	var membership [CellCount]int
	for gi := 0; gi < GroupCount; gi++ {
		for _, ci := range groupCells[gi] {
			membership[ci]++
		}
	}
	for ci, count := range membership {
		if count != 3 {
			t.Errorf("cell %d is in %d groups", ci, count)
		}
	}
}

func TestCellGroups(t *testing.T) {
	for ci := 0; ci < CellCount; ci++ {
		gs := cellGroups[ci]
		if gs[0] != rowGroupBase+rowOf(ci) ||
			gs[1] != colGroupBase+colOf(ci) ||
			gs[2] != boxGroupBase+boxOf(ci) {
			t.Errorf("cell %d groups are %v", ci, gs)
		}
		// membership is mutual
		for _, gi := range gs {
			found := false
			for _, member := range groupCells[gi] {
				if member == ci {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("cell %d not listed in its group %v", ci, groupID(gi))
			}
		}
	}
}

func TestBoxOf(t *testing.T) {
	// spot checks at the box corners
	cases := map[int]int{0: 0, 2: 0, 3: 1, 8: 2, 27: 3, 40: 4, 53: 5, 54: 6, 57: 7, 60: 8, 80: 8}
	for idx, box := range cases {
		if got := boxOf(idx); got != box {
			t.Errorf("boxOf(%d) = %d, expected %d", idx, got, box)
		}
	}
}

func TestCellPeers(t *testing.T) {
	for ci := 0; ci < CellCount; ci++ {
		seen := map[int]bool{}
		for _, pi := range cellPeers[ci] {
			if pi == ci {
				t.Errorf("cell %d is its own peer", ci)
			}
			if seen[pi] {
				t.Errorf("cell %d has duplicate peer %d", ci, pi)
			}
			seen[pi] = true
			if rowOf(pi) != rowOf(ci) && colOf(pi) != colOf(ci) && boxOf(pi) != boxOf(ci) {
				t.Errorf("cell %d peer %d shares no group", ci, pi)
			}
		}
		if len(seen) != PeerCount {
			t.Errorf("cell %d has %d peers", ci, len(seen))
		}
	}
	// reading-order spot check for the top-left cell
	expect := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 19, 20, 27, 36, 45, 54, 63, 72}
	for i, pi := range cellPeers[0] {
		if pi != expect[i] {
			t.Fatalf("cell 0 peers are %v, expected %v", cellPeers[0], expect)
		}
	}
}

func TestGroupID(t *testing.T) {
	cases := map[int]string{
		0:  "row 1",
		8:  "row 9",
		9:  "column 1",
		17: "column 9",
		18: "box 1",
		26: "box 9",
	}
	for gi, expect := range cases {
		if got := groupID(gi).String(); got != expect {
			t.Errorf("group %d is %q, expected %q", gi, got, expect)
		}
	}
	if got := (GroupID{}).String(); got != "<group> 0" {
		t.Errorf("zero GroupID is %q", got)
	}
}
