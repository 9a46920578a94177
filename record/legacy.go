package record

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrParse = errors.New("parse error")

// ParseError is returned when a textual value does not fit the column type.
type ParseError struct {
	Column string
	Value  string
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse value %q for column '%s': %s", e.Value, e.Column, e.cause.Error())
}

func (e *ParseError) Unwrap() error { return e.cause }

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ParseMatcher builds a matcher from a column name and a textual value.
// Unknown columns match nothing and are not an error.
func ParseMatcher(column, value string) (Matcher, error) {
	switch column {
	case IdField.Name:
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, &ParseError{Column: column, Value: value, cause: err}
		}
		return IdField.Match(uint32(v)), nil
	case TextFieldA.Name:
		return TextFieldA.Match(value), nil
	case NumericField.Name:
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, &ParseError{Column: column, Value: value, cause: err}
		}
		return NumericField.Match(int32(v)), nil
	case TextFieldB.Name:
		return TextFieldB.Match(value), nil
	}
	return MatchNone, nil
}

// FindMatchingRecords is the string keyed form of Filter.
func FindMatchingRecords(c Collection, column, value string) (Collection, error) {
	m, err := ParseMatcher(column, value)
	if err != nil {
		return nil, err
	}
	return Filter(c, m), nil
}
