package puzzle

import (
	"reflect"
	"strings"
	"testing"
)

const oneStarString = "" +
	"4....35.2" +
	"..95.634." +
	"........8" +
	"....3486." +
	"..46.52.." +
	".2879...." +
	"9........" +
	".873.29.." +
	"5.29....6"

func TestParseString(t *testing.T) {
	values, err := ParseString(oneStarString)
	if err != nil {
		t.Fatalf("string form rejected: %v", err)
	}
	if values != oneStarValues {
		t.Errorf("parsed values differ from fixture")
	}

	// '0' and '.' both mean empty, and whitespace is skipped
	spread := strings.ReplaceAll(oneStarString, ".", "0")
	spread = strings.Join(strings.Split(spread, ""), " ")
	values, err = ParseString(spread + "\n")
	if err != nil {
		t.Fatalf("spread string form rejected: %v", err)
	}
	if values != oneStarValues {
		t.Errorf("spread parse differs from fixture")
	}
}

func TestParseStringErrors(t *testing.T) {
	if _, err := ParseString(oneStarString[:80]); !IsInvalidInput(err) {
		t.Errorf("short string gave %v", err)
	}
	if _, err := ParseString(oneStarString + "."); !IsInvalidInput(err) {
		t.Errorf("long string gave %v", err)
	}

	bad := oneStarString[:40] + "x" + oneStarString[41:]
	_, err := ParseString(bad)
	if !IsInvalidInput(err) {
		t.Fatalf("bad rune gave %v", err)
	}
	e := err.(Error)
	if e.Attribute != EncodingAttribute {
		t.Errorf("attribute is %v", e.Attribute)
	}
	if len(e.Values) != 2 || e.Values[0] != "x" || e.Values[1] != 40 {
		t.Errorf("error data is %v", e.Values)
	}

	// two 5s in row 1
	if _, err := ParseString("55" + oneStarString[2:]); !IsContradictoryInput(err) {
		t.Errorf("duplicate gave %v", err)
	}
}

func TestSignature(t *testing.T) {
	sig := oneStarValues.String()
	if sig != oneStarString {
		t.Errorf("signature is %q", sig)
	}
	back, err := ParseString(sig)
	if err != nil || back != oneStarValues {
		t.Errorf("signature did not round-trip: %v", err)
	}
	if (Values{}).String() != strings.Repeat(".", CellCount) {
		t.Errorf("empty signature is %q", Values{}.String())
	}
}

func TestSlice(t *testing.T) {
	s := oneStarValues.Slice()
	if len(s) != CellCount {
		t.Fatalf("slice has %d values", len(s))
	}
	back, err := ParseValues(s)
	if err != nil || back != oneStarValues {
		t.Errorf("slice did not round-trip: %v", err)
	}
	if !reflect.DeepEqual((Values{}).Slice(), make([]int, CellCount)) {
		t.Errorf("empty slice is %v", Values{}.Slice())
	}
}

func TestGridString(t *testing.T) {
	got := oneStarValues.GridString()
	expect := "" +
		"+-------+-------+-------+\n" +
		"| 4 _ _ | _ _ 3 | 5 _ 2 |\n" +
		"| _ _ 9 | 5 _ 6 | 3 4 _ |\n" +
		"| _ _ _ | _ _ _ | _ _ 8 |\n" +
		"+-------+-------+-------+\n" +
		"| _ _ _ | _ 3 4 | 8 6 _ |\n" +
		"| _ _ 4 | 6 _ 5 | 2 _ _ |\n" +
		"| _ 2 8 | 7 9 _ | _ _ _ |\n" +
		"+-------+-------+-------+\n" +
		"| 9 _ _ | _ _ _ | _ _ _ |\n" +
		"| _ 8 7 | 3 _ 2 | 9 _ _ |\n" +
		"| 5 _ 2 | 9 _ _ | _ _ 6 |\n" +
		"+-------+-------+-------+\n"
	if got != expect {
		t.Errorf("grid form is\n%s\nexpected\n%s", got, expect)
	}
}
