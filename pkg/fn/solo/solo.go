package solo

import (
	"github.com/ib-77/optres/pkg/fn"
)

// Capture runs f and returns the value of a panic raised inside it. A panic with an
// error value is returned as is; any other value is wrapped in *fn.PanicError.
func Capture(f func()) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if e, ok := rec.(error); ok && !fn.IsNil(e) {
			err = e
			return
		}
		err = &fn.PanicError{Value: rec}
	}()
	f()
	return nil
}

// Map invokes factory once with source and wraps the outcome: Ok on return, Err with
// the captured error on panic.
func Map[In, Out any](source In, factory func(In) Out) fn.Result[Out] {
	var out Out
	if err := Capture(func() { out = factory(source) }); err != nil {
		return fn.Err[Out](err)
	}
	return fn.Ok(out)
}

// MapOption is the Option flavored Map: a panic or an absent return value yields None.
func MapOption[In, Out any](source In, factory func(In) Out) fn.Option[Out] {
	var out Out
	if err := Capture(func() { out = factory(source) }); err != nil {
		return fn.None[Out]()
	}
	return fn.Of(out)
}

// Try invokes a factory following the (value, error) convention. Returned errors and
// panics both end up as Err.
func Try[In, Out any](source In, factory func(In) (Out, error)) fn.Result[Out] {
	var (
		out    Out
		tryErr error
	)
	if err := Capture(func() { out, tryErr = factory(source) }); err != nil {
		return fn.Err[Out](err)
	}
	return fn.FromPair(out, tryErr)
}

// Then maps the payload of an Ok. An Err is returned with its original error and
// factory is not called.
func Then[In, Out any](input fn.Result[In], factory func(In) Out) fn.Result[Out] {
	if input.IsErr() {
		return fn.Err[Out](input.Err())
	}
	return Map(input.Unwrap(), factory)
}

// ThenOption maps the payload of a Some. None stays None without calling factory.
func ThenOption[In, Out any](input fn.Option[In], factory func(In) Out) fn.Option[Out] {
	v, ok := input.Get()
	if !ok {
		return fn.None[Out]()
	}
	return MapOption(v, factory)
}

// ThenTry is Then for factories returning (value, error).
func ThenTry[In, Out any](input fn.Result[In], factory func(In) (Out, error)) fn.Result[Out] {
	if input.IsErr() {
		return fn.Err[Out](input.Err())
	}
	return Try(input.Unwrap(), factory)
}

// Bind continues with a factory that already returns a Result.
func Bind[In, Out any](input fn.Result[In], onOk func(In) fn.Result[Out]) fn.Result[Out] {
	if input.IsErr() {
		return fn.Err[Out](input.Err())
	}
	var out fn.Result[Out]
	if err := Capture(func() { out = onOk(input.Unwrap()) }); err != nil {
		return fn.Err[Out](err)
	}
	return out
}

// BindOption continues with a factory that already returns an Option.
func BindOption[In, Out any](input fn.Option[In], onSome func(In) fn.Option[Out]) fn.Option[Out] {
	v, ok := input.Get()
	if !ok {
		return fn.None[Out]()
	}
	var out fn.Option[Out]
	if err := Capture(func() { out = onSome(v) }); err != nil {
		return fn.None[Out]()
	}
	return out
}

// Validate applies predicates left to right and stops at the first false.
func Validate[T any](value T, predicates ...func(T) bool) bool {
	for _, p := range predicates {
		if !p(value) {
			return false
		}
	}
	return true
}

// Check runs checks in order; the first failing one turns the value into an Err
// carrying its message as *fn.ValidationError.
func Check[T any](value T, checks ...func(T) (valid bool, errMsg string)) fn.Result[T] {
	return AndCheck(fn.Ok(value), checks...)
}

// AndCheck is Check on an existing Result. An Err passes through untouched.
func AndCheck[T any](input fn.Result[T], checks ...func(T) (valid bool, errMsg string)) fn.Result[T] {
	if input.IsErr() {
		return input
	}
	value := input.Unwrap()
	for _, check := range checks {
		if valid, errMsg := check(value); !valid {
			return fn.Err[T](&fn.ValidationError{Message: errMsg})
		}
	}
	return input
}

// Tee calls observer with value and returns value unchanged.
func Tee[T any](value T, observer func(T)) T {
	observer(value)
	return value
}

func TeeIf[T any](value T, condition func(T) bool, observer func(T)) T {
	if condition(value) {
		observer(value)
	}
	return value
}

// TeeSome is Tee that skips absent values.
func TeeSome[T any](value T, observer func(T)) T {
	if !fn.IsAbsent(value) {
		observer(value)
	}
	return value
}

func DoubleTee[T any](input fn.Result[T], onOk func(T), onErr func(error)) fn.Result[T] {
	input.Match(onOk, onErr)
	return input
}

// Finally reduces a Result to a plain value.
func Finally[In, Out any](input fn.Result[In], onOk func(In) Out, onErr func(error) Out) Out {
	if input.IsOk() {
		return onOk(input.Unwrap())
	}
	return onErr(input.Err())
}
