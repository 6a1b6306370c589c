package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes why an input could not be accepted or a
// puzzle could not be solved.  It can produce an error message in
// English, but its main function is to give callers a structured
// value they can dispatch on: the Kind tells them which terminal
// failure occurred, and the supplemental fields say where.
//
// Every item in Values is required to be JSON-serializable, so
// Errors can be returned to web clients as they are.
type Error struct {
	Kind      ErrorKind      `json:"kind"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// The ErrorKind is the failure taxonomy.  All three kinds are
// terminal: retrying the same input cannot change the outcome.
type ErrorKind int

// Constants for the error kinds.
const (
	UnknownKind ErrorKind = iota
	// InvalidInputKind: wrong length or out-of-range values,
	// detected before solving starts.
	InvalidInputKind
	// ContradictoryInputKind: two fixed cells in the same group
	// share a digit, detected before solving starts.
	ContradictoryInputKind
	// UnsolvableKind: the input is well-formed but search
	// exhausted every possibility without a solution.
	UnsolvableKind
	MaxKind
)

// ErrorKinds implement Stringer
func (k ErrorKind) String() string {
	switch k {
	case InvalidInputKind:
		return "invalid input"
	case ContradictoryInputKind:
		return "contradictory input"
	case UnsolvableKind:
		return "unsolvable"
	default:
		return "unknown"
	}
}

// An ErrorAttribute names the part of the input that has a
// problem, when there is a specific one to name.
type ErrorAttribute int

// Constants for the attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	LengthAttribute
	IndexAttribute
	ValueAttribute
	GroupAttribute
	EncodingAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed,
// such as the offending value and its position.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, use it, otherwise produce an appropriate
// (English, non-localized) message.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	es := "Invalid puzzle: "
	switch e.Kind {
	case ContradictoryInputKind:
		es = "Contradictory puzzle: "
	case UnsolvableKind:
		return "Unsolvable puzzle: no assignment of the empty cells satisfies every group"
	}
	switch e.Attribute {
	case LengthAttribute:
		es += fmt.Sprintf("Expected %v values, got %v", nextVal(), nextVal())
	case IndexAttribute:
		es += fmt.Sprintf("Cell index %v is out of range", nextVal())
	case ValueAttribute:
		es += fmt.Sprintf("Cell %v has value %v, must be 0 through 9", nextVal(), nextVal())
	case GroupAttribute:
		es += fmt.Sprintf("Multiple cells in %v have value %v", nextVal(), nextVal())
	case EncodingAttribute:
		es += fmt.Sprintf("Unexpected character %q at position %v", nextVal(), nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// IsInvalidInput reports whether an error is an Error of
// InvalidInputKind.
func IsInvalidInput(err error) bool {
	e, ok := err.(Error)
	return ok && e.Kind == InvalidInputKind
}

// IsContradictoryInput reports whether an error is an Error of
// ContradictoryInputKind.
func IsContradictoryInput(err error) bool {
	e, ok := err.(Error)
	return ok && e.Kind == ContradictoryInputKind
}

// IsUnsolvable reports whether an error is an Error of
// UnsolvableKind.
func IsUnsolvable(err error) bool {
	e, ok := err.(Error)
	return ok && e.Kind == UnsolvableKind
}

/*

Error constructors used by the validator and the entry points.

*/

// lengthError: the input doesn't have one value per cell.
func lengthError(got int) Error {
	return Error{
		Kind:      InvalidInputKind,
		Attribute: LengthAttribute,
		Values:    ErrorData{CellCount, got},
	}
}

// valueError: a cell value is outside 0..9.
func valueError(idx, val int) Error {
	return Error{
		Kind:      InvalidInputKind,
		Attribute: ValueAttribute,
		Values:    ErrorData{idx, val},
	}
}

// encodingError: a puzzle string contains an unexpected rune.
func encodingError(r rune, pos int) Error {
	return Error{
		Kind:      InvalidInputKind,
		Attribute: EncodingAttribute,
		Values:    ErrorData{string(r), pos},
	}
}

// duplicateError: two fixed cells in one group share a digit.
func duplicateError(gid GroupID, digit int) Error {
	return Error{
		Kind:      ContradictoryInputKind,
		Attribute: GroupAttribute,
		Values:    ErrorData{gid, digit},
	}
}

// unsolvableError: search exhausted without a solution.
func unsolvableError() Error {
	return Error{Kind: UnsolvableKind}
}
