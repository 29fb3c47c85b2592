package chain

import (
	"github.com/ib-77/optres/pkg/fn"
	"github.com/ib-77/optres/pkg/fn/solo"
)

// Chain wraps a fn.Result to enable fluent chaining
type Chain[T any] struct {
	result fn.Result[T]
}

// Start creates a new chain from a fn.Result
func Start[T any](result fn.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: fn.Ok(value)}
}

// FromOption starts from an Option, using err when it is None
func FromOption[T any](option fn.Option[T], err error) *Chain[T] {
	return &Chain[T]{result: fn.FromOption(option, err)}
}

// Result returns the underlying fn.Result
func (c *Chain[T]) Result() fn.Result[T] {
	return c.result
}

// Then chains a function that returns fn.Result[U]
func Then[T, U any](c *Chain[T], onOk func(T) fn.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.Bind(c.result, onOk)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnOk func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.ThenTry(c.result, tryOnOk)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Then(c.result, onOk)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onOk func(T)) *Chain[T] {
	return &Chain[T]{
		result: c.result.Tee(func(r fn.Result[T]) {
			r.Match(onOk, nil)
		}),
	}
}

// Validate fails the chain with the message of the first failing check
func (c *Chain[T]) Validate(checks ...func(T) (valid bool, errMsg string)) *Chain[T] {
	return &Chain[T]{result: solo.AndCheck(c.result, checks...)}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onOk func(T) U, onErr func(error) U) U {
	return solo.Finally(c.result, onOk, onErr)
}

// Or returns the first chain holding an Ok, trying c before the alternatives.
// When none succeeded the first error wins. Nil alternatives are skipped.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt != nil && alt.result.IsOk() {
			return alt
		}
	}
	return c
}
