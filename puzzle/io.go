package puzzle

/*

Print and parse forms of puzzles

*/

import (
	"strings"
	"unicode"
)

// ParseString reads a puzzle from its 81-character string form:
// digits 1-9 for fixed cells, '0' or '.' for empty cells, in
// reading order.  Whitespace anywhere in the string is ignored,
// so multi-line grid layouts parse too.  The result is validated
// the same way as any other input.
func ParseString(s string) (Values, error) {
	var values Values
	n := 0
	for pos, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '0' || r == '.':
			// empty cell
		case r >= '1' && r <= '9':
			if n < CellCount {
				values[n] = uint8(r - '0')
			}
		default:
			return Values{}, encodingError(r, pos)
		}
		n++
	}
	if n != CellCount {
		return Values{}, lengthError(n)
	}
	if err := Validate(values); err != nil {
		return Values{}, err
	}
	return values, nil
}

// String returns the 81-character signature of the values, with
// '.' for empty cells.  Signatures are the canonical compact form
// used for cache keys and storage.
func (v Values) String() string {
	var b strings.Builder
	b.Grow(CellCount)
	for _, val := range v {
		if val == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte('0' + val)
		}
	}
	return b.String()
}

// Slice returns the values as an int slice, for JSON responses
// and other callers that want the dynamic shape back.
func (v Values) Slice() []int {
	out := make([]int, CellCount)
	for i, val := range v {
		out[i] = int(val)
	}
	return out
}

// GridString returns a pretty-printed view of the values with box
// separators, for the CLI and for debugging.
func (v Values) GridString() (result string) {
	for ri := 0; ri < SideLen; ri++ {
		if ri%TileLen == 0 {
			result += "+-------+-------+-------+\n"
		}
		for ci := 0; ci < SideLen; ci++ {
			if ci%TileLen == 0 {
				result += "| "
			}
			val := v[ri*SideLen+ci]
			if val == 0 {
				result += "_ "
			} else {
				result += string('0'+val) + " "
			}
		}
		result += "|\n"
	}
	result += "+-------+-------+-------+\n"
	return
}
