package record

import (
	"strings"
)

// Comparator decides if a projected field value satisfies a target value.
type Comparator[V comparable] interface {
	Compare(value, target V) bool
}

type ExactEquality[V comparable] struct{}

func (ExactEquality[V]) Compare(value, target V) bool {
	return value == target
}

// SubstringContainment is case sensitive, an empty target matches everything.
type SubstringContainment struct{}

func (SubstringContainment) Compare(value, target string) bool {
	return strings.Contains(value, target)
}

// Field is a typed handle to one column of Record.
type Field[V comparable] struct {
	Name       string
	project    func(r *Record) V
	comparator Comparator[V]
}

// NewField picks the comparison strategy from V: text is matched by
// containment, everything else by equality.
func NewField[V comparable](name string, project func(r *Record) V) Field[V] {
	return Field[V]{
		Name:       name,
		project:    project,
		comparator: comparatorFor[V](),
	}
}

func comparatorFor[V comparable]() Comparator[V] {
	var zero V
	switch any(zero).(type) {
	case string:
		return any(SubstringContainment{}).(Comparator[V])
	default:
		return ExactEquality[V]{}
	}
}

func (f Field[V]) Project(r *Record) V {
	return f.project(r)
}

func (f Field[V]) Comparator() Comparator[V] {
	return f.comparator
}

func (f Field[V]) Match(target V) FieldMatcher[V] {
	return NewMatcher(f, target)
}

var (
	IdField      = NewField("column0", func(r *Record) uint32 { return r.Id })
	TextFieldA   = NewField("column1", func(r *Record) string { return r.TextA })
	NumericField = NewField("column2", func(r *Record) int32 { return r.Numeric })
	TextFieldB   = NewField("column3", func(r *Record) string { return r.TextB })
)
