// Package optional models a value that may be absent. Iterators use it to
// signal exhaustion without reserving a sentinel value of T.
package optional

type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the wrapped value or the zero value of T when absent.
func (self Optional[T]) Value() T {
	return self.value
}
