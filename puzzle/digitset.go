package puzzle

/*

Digit sets

*/

import (
	"math/bits"
	"strconv"
)

// A DigitSet is a set of Sudoku digits (1 through 9) packed into
// the low nine bits of a uint16: bit d-1 is set when digit d is a
// member.  DigitSets serve two roles: the candidate mask of an
// empty cell, and the set of digits already placed in a group.
type DigitSet uint16

const (
	// EmptySet contains no digits.
	EmptySet DigitSet = 0
	// FullSet contains all nine digits.
	FullSet DigitSet = 1<<SideLen - 1
)

// SingleDigit returns the set containing just the given digit.
// Digits outside 1..9 give the empty set.
func SingleDigit(d int) DigitSet {
	if d < 1 || d > SideLen {
		return EmptySet
	}
	return 1 << (d - 1)
}

// Has reports whether the set contains the digit.
func (s DigitSet) Has(d int) bool {
	return s&SingleDigit(d) != 0
}

// Add returns the set with the digit included.
func (s DigitSet) Add(d int) DigitSet {
	return s | SingleDigit(d)
}

// Remove returns the set with the digit excluded.
func (s DigitSet) Remove(d int) DigitSet {
	return s &^ SingleDigit(d)
}

// Union returns the digits in either set.
func (s DigitSet) Union(o DigitSet) DigitSet {
	return s | o
}

// Intersect returns the digits in both sets.
func (s DigitSet) Intersect(o DigitSet) DigitSet {
	return s & o
}

// Minus returns the digits in s that are not in o.
func (s DigitSet) Minus(o DigitSet) DigitSet {
	return s &^ o
}

// Count returns the number of digits in the set.
func (s DigitSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// IsSingle reports whether the set contains exactly one digit.
func (s DigitSet) IsSingle() bool {
	return s != 0 && s&(s-1) == 0
}

// Lowest returns the smallest digit in the set, or 0 if the set
// is empty.
func (s DigitSet) Lowest() int {
	if s == 0 {
		return 0
	}
	return bits.TrailingZeros16(uint16(s)) + 1
}

// Digits returns the members of the set in ascending order.
func (s DigitSet) Digits() []int {
	ds := make([]int, 0, s.Count())
	for d := 1; d <= SideLen; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

// DigitSets implement Stringer, for error values and test logs.
func (s DigitSet) String() string {
	result := "{"
	for i, d := range s.Digits() {
		if i > 0 {
			result += " "
		}
		result += strconv.Itoa(d)
	}
	return result + "}"
}
