package shpancursor

import (
	"cmp"
)

// Not returns a predicate that holds exactly when p does not
func (p Predicate[SRC]) Not() Predicate[SRC] {
	return func(src SRC) bool {
		return !p(src)
	}
}

// And returns a predicate that holds when both p and other hold
func (p Predicate[SRC]) And(other Predicate[SRC]) Predicate[SRC] {
	return func(src SRC) bool {
		return p(src) && other(src)
	}
}

// EqualTo returns a predicate matching elements equal to v
func EqualTo[T comparable](v T) Predicate[T] {
	return func(src T) bool {
		return src == v
	}
}

// LessThan returns a predicate matching elements ordered before v
func LessThan[T cmp.Ordered](v T) Predicate[T] {
	return func(src T) bool {
		return cmp.Less(src, v)
	}
}

// GreaterThan returns a predicate matching elements ordered after v
func GreaterThan[T cmp.Ordered](v T) Predicate[T] {
	return func(src T) bool {
		return cmp.Less(v, src)
	}
}

type Mapper[SRC any, TGT any] func(src SRC) TGT

type Predicate[SRC any] Mapper[SRC, bool]
