package solo

import (
	"errors"

	"github.com/ib-77/bgqueue/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Guard applies transform to input. A panic inside transform is recovered and
// returned as a failed result holding a *rop.PanicError.
func Guard[In, Out any](input In, transform func(In) Out) (res rop.Result[Out]) {
	defer func() {
		if r := recover(); r != nil {
			res = rop.Fail[Out](rop.NewPanicError(r))
		}
	}()

	return rop.Success(transform(input))
}

// GuardTry is Guard for transforms that report failure with an error.
func GuardTry[In, Out any](input In, transform func(In) (Out, error)) (res rop.Result[Out]) {
	defer func() {
		if r := recover(); r != nil {
			res = rop.Fail[Out](rop.NewPanicError(r))
		}
	}()

	out, err := transform(input)
	if err != nil {
		return rop.Fail[Out](err)
	}

	return rop.Success(out)
}

// Lift turns an error-returning transform into one that yields a result, so
// both kinds can be driven by the same loop.
func Lift[In, Out any](transform func(In) (Out, error)) func(In) rop.Result[Out] {
	return func(in In) rop.Result[Out] {
		return GuardTry(in, transform)
	}
}

// Wrap is Lift for plain transforms.
func Wrap[In, Out any](transform func(In) Out) func(In) rop.Result[Out] {
	return func(in In) rop.Result[Out] {
		return Guard(in, transform)
	}
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

// Values splits results into the successful values, in order, and the joined
// errors of the failed ones.
func Values[T any](results []rop.Result[T]) ([]T, error) {
	values := make([]T, 0, len(results))
	var err error

	for _, r := range results {
		if r.IsSuccess() {
			values = append(values, r.Result())
			continue
		}
		if r.IsFailure() {
			e := rop.GetErrors(err)
			e = append(e, r.Err())
			err = errors.Join(e...)
		}
	}

	return values, err
}
