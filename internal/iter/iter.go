package iter

import (
	"context"

	"gopkg.microglot.org/swiftl.go/internal/idl"
	"gopkg.microglot.org/swiftl.go/internal/optional"
)

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it idl.Iterator[T], f idl.Filter[T]) idl.Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   idl.Iterator[T]
	filter idl.Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) optional.Optional[T] {
	for {
		v := it.iter.Next(ctx)
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(ctx, v.Value()) {
			return v
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// Collect drains the iterator into a slice and closes it. The values read
// before a close error are returned along with the error. Draining stops
// early if the context is done.
func Collect[T any](ctx context.Context, it idl.Iterator[T]) ([]T, error) {
	var out []T
	for v := it.Next(ctx); v.IsPresent(); v = it.Next(ctx) {
		out = append(out, v.Value())
		if ctx.Err() != nil {
			_ = it.Close(ctx)
			return out, ctx.Err()
		}
	}
	return out, it.Close(ctx)
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(ctx context.Context, val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}
