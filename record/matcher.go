package record

type Matcher interface {
	Matches(r *Record) bool
}

// MatchFunc adapts a plain predicate to Matcher.
type MatchFunc func(r *Record) bool

func (f MatchFunc) Matches(r *Record) bool {
	return f(r)
}

var (
	MatchAll  Matcher = MatchFunc(func(*Record) bool { return true })
	MatchNone Matcher = MatchFunc(func(*Record) bool { return false })
)

// FieldMatcher binds a field to a target value of the same type.
type FieldMatcher[V comparable] struct {
	Field  Field[V]
	Target V
}

func NewMatcher[V comparable](field Field[V], target V) FieldMatcher[V] {
	return FieldMatcher[V]{
		Field:  field,
		Target: target,
	}
}

func (m FieldMatcher[V]) Matches(r *Record) bool {
	return m.Field.comparator.Compare(m.Field.project(r), m.Target)
}
