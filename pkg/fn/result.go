package fn

import "fmt"

// Result is either Ok(value) or Err(error). A zero Result was never constructed and
// behaves as Err(ErrNoValue).
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err returns a failed Result. It panics with ErrInvalidArgument when err is nil.
func Err[T any](err error) Result[T] {
	if IsNil(err) {
		panic(invalidArgument("Err requires a non-nil error"))
	}
	return Result[T]{err: err}
}

// FromPair builds a Result from the usual (value, error) return pair.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// FromOption turns Some into Ok and None into Err(err). The error for the absent case
// has to be chosen by the caller; pass ErrNoValue for the generic one. It panics with
// ErrInvalidArgument when o is None and err is nil.
func FromOption[T any](o Option[T], err error) Result[T] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	if IsNil(err) {
		panic(invalidArgument("converting None to a Result requires an error"))
	}
	return Err[T](err)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Err returns the stored error, or nil for Ok.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrNoValue
	}
	return r.err
}

// Get returns the payload and the stored error.
func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

// Unwrap returns the payload. On Err it panics with the stored error itself.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(r.Err())
	}
	return r.value
}

func (r Result[T]) UnwrapOr(defaultValue T) T {
	if !r.ok {
		return defaultValue
	}
	return r.value
}

func (r Result[T]) UnwrapOrElse(defaultValue func() T) T {
	if !r.ok {
		return defaultValue()
	}
	return r.value
}

// UnwrapOrElseErr computes the fallback from the stored error.
func (r Result[T]) UnwrapOrElseErr(defaultValue func(error) T) T {
	if !r.ok {
		return defaultValue(r.Err())
	}
	return r.value
}

// Expect is Unwrap with a caller message: on Err it panics with an *ExpectError
// carrying message, and the stored error is dropped.
func (r Result[T]) Expect(message string) T {
	if !r.ok {
		panic(&ExpectError{Message: message})
	}
	return r.value
}

// Match calls exactly one of onOk or onErr. A nil callback is skipped.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		if onOk != nil {
			onOk(r.value)
		}
		return
	}
	if onErr != nil {
		onErr(r.Err())
	}
}

// Tee passes the whole Result to observer and returns it unchanged.
func (r Result[T]) Tee(observer func(Result[T])) Result[T] {
	if observer != nil {
		observer(r)
	}
	return r
}

// Option drops the error: Ok becomes Of(value), Err becomes None.
func (r Result[T]) Option() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Of(r.value)
}

// Equal compares the active payloads, errors included. Payloads with an Equal(T) bool
// method use it; everything else is compared structurally.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return equalValues(r.value, other.value)
	}
	return equalValues(r.Err(), other.Err())
}

func (r Result[T]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.Err())
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

func (r Result[T]) present() bool {
	return r.ok
}
