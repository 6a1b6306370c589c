package puzzle

/*

Input validation

*/

// Validate confirms that a set of values is an acceptable puzzle:
// every value in range 0..9, and no two fixed cells in the same
// row, column, or box sharing a digit.  The check is pure; no
// solving work happens and nothing is modified.  (The length of
// the input is enforced by the Values type; slice-shaped inputs
// go through ParseValues first.)
//
// Range problems report InvalidInputKind; duplicates report
// ContradictoryInputKind, naming the first offending group in
// row, column, box scan order.
func Validate(values Values) error {
	for i, v := range values {
		if v > SideLen {
			return valueError(i, int(v))
		}
	}
	var seen [GroupCount]DigitSet
	for i, v := range values {
		if v == 0 {
			continue
		}
		d := int(v)
		for _, gi := range cellGroups[i] {
			if seen[gi].Has(d) {
				return duplicateError(groupID(gi), d)
			}
			seen[gi] = seen[gi].Add(d)
		}
	}
	return nil
}

// ParseValues converts and validates an arbitrary int sequence as
// a puzzle.  This is the boundary for callers holding dynamically
// sized data (JSON arrays, command arguments); everything past it
// works with the fixed Values container.
func ParseValues(raw []int) (Values, error) {
	var values Values
	if len(raw) != CellCount {
		return Values{}, lengthError(len(raw))
	}
	for i, v := range raw {
		if v < 0 || v > SideLen {
			return Values{}, valueError(i, v)
		}
		values[i] = uint8(v)
	}
	if err := Validate(values); err != nil {
		return Values{}, err
	}
	return values, nil
}
