package flow

import (
	"context"
	"errors"

	"github.com/AlexStiyer/OTTO/pkg/result"
)

func Succeed[T any](input T) result.Result[T, error] {
	return result.Ok[T, error](input)
}

func Fail[T any](err error) result.Result[T, error] {
	return result.Err[T, error](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) result.Result[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input result.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) result.Result[T, error] {

	if v, ok := input.Ok().Get(); ok {

		if isValid, errMsg := validate(ctx, v); isValid {
			return result.Ok[T, error](v)
		} else {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input result.Result[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in result.Result[T, error]) result.Result[T, error]) result.Result[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current result.Result[T, error]) result.Result[T, error] {

			if ce, isErr := current.Err().Get(); isErr {
				e := result.CollectErrors(err)
				e = append(e, ce)
				err = errors.Join(e...)
			}

			if result.IsNil(err) {
				return current
			}

			return Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) result.Result[Out, error]) result.Result[Out, error] {

	if v, ok := input.Ok().Get(); ok {
		return onSuccess(ctx, v)
	}
	return result.ErrFrom[Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out) result.Result[Out, error] {

	if v, ok := input.Ok().Get(); ok {
		return result.Ok[Out, error](onSuccess(ctx, v))
	}
	return result.ErrFrom[Out](input)
}

func Tee[T any](ctx context.Context,
	input result.Result[T, error],
	onSuccess func(ctx context.Context, r result.Result[T, error])) result.Result[T, error] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input result.Result[T, error],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) result.Result[T, error] {

	if v, ok := input.Ok().Get(); ok {
		onSuccess(ctx, v)
	} else {
		e, _ := input.Err().Get()
		onError(ctx, e)
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) result.Result[Out, error] {

	if v, ok := input.Ok().Get(); ok {
		return result.Ok[Out, error](onSuccess(ctx, v))
	}

	e, _ := input.Err().Get()
	onError(ctx, e)

	return result.ErrFrom[Out](input)
}

func Try[In any, Out any](ctx context.Context, input result.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) result.Result[Out, error] {

	if v, ok := input.Ok().Get(); ok {

		out, err := onTryExecute(ctx, v)
		if err != nil {
			return result.Err[Out, error](err)
		}

		return result.Ok[Out, error](out)
	}

	return result.ErrFrom[Out](input)
}

func FailOnError[T any](ctx context.Context, input result.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) result.Result[T, error] {
	if v, ok := input.Ok().Get(); ok {
		err := maybeErr(ctx, v)
		if err != nil {
			return Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if v, ok := input.Ok().Get(); ok {
		return onSuccess(ctx, v)
	}
	e, _ := input.Err().Get()
	return onError(ctx, e)
}

func Join[T any](ctx context.Context,
	input result.Result[T, error],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current result.Result[T, error]) result.Result[T, error],
	inputsF ...func(ctx context.Context, in result.Result[T, error]) result.Result[T, error]) result.Result[T, error] {

	if len(inputsF) == 0 || concat == nil || !result.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !result.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !result.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
