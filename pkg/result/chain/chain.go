package chain

import (
	"context"

	"github.com/AlexStiyer/OTTO/pkg/result"
	"github.com/AlexStiyer/OTTO/pkg/result/flow"
)

// Chain wraps a Result[T, error] with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T, error]
}

// Start creates a new chain from a Result[T, error]
func Start[T any](ctx context.Context, r result.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		res: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		res: flow.Succeed(value),
	}
}

// Result returns the underlying Result
func (c *Chain[T]) Result() result.Result[T, error] {
	return c.res
}

// Then chains a function that returns Result[U, error]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) result.Result[U, error]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: flow.Switch[T, U](c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: flow.Try[T, U](c.ctx, c.res, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: flow.Map[T, U](c.ctx, c.res, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: flow.Tee[T](c.ctx, c.res,
			func(ctx context.Context, r result.Result[T, error]) {
				if v, ok := r.Ok().Get(); ok {
					onSuccess(ctx, v)
				}
			}),
	}
}

// Or selects the first successful chain; if both failed, the receiver wins
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And yields required if the receiver succeeded, otherwise the receiver's failure
func (c *Chain[T]) And(required *Chain[T]) *Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// RepeatUntil applies onSuccess repeatedly while the chain stays successful
// and until reports true for the current value
func (c *Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) result.Result[T, error],
	until func(ctx context.Context, t T) bool) *Chain[T] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = Then(c, onSuccess)

		v, ok := c.res.Ok().Get()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

// While applies onSuccess while the chain stays successful and the predicate holds
func (c *Chain[T]) While(onSuccess func(ctx context.Context, t T) result.Result[T, error],
	while func(ctx context.Context, t T) bool) *Chain[T] {

	for {
		v, ok := c.res.Ok().Get()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = Then(c, onSuccess)
	}
}

// Finally collapses the chain into a final result using flow.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return flow.Finally[T, U](c.ctx, c.res, onSuccess, onFailure)
}
