package fn

import "fmt"

// Option is either Some(value) or None. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v. It panics with ErrInvalidArgument when v is
// absent according to IsAbsent; use Of to turn absence into None instead.
func Some[T any](v T) Option[T] {
	o, err := TrySome(v)
	if err != nil {
		panic(err)
	}
	return o
}

// TrySome is Some without the panic.
func TrySome[T any](v T) (Option[T], error) {
	if IsAbsent(v) {
		return None[T](), invalidArgument("cannot wrap an absent %T in Some", v)
	}
	return Option[T]{value: v, some: true}, nil
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of converts a raw value: absent values become None, everything else Some.
func Of[T any](v T) Option[T] {
	return OfFunc(v, IsAbsent[T])
}

// OfFunc is Of with a caller supplied absence predicate.
func OfFunc[T any](v T, absent func(T) bool) Option[T] {
	if absent(v) {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// FromPtr dereferences p, returning None for a nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Option[T]{value: *p, some: true}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Match calls exactly one of onSome or onNone. A nil callback is skipped.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		if onSome != nil {
			onSome(o.value)
		}
		return
	}
	if onNone != nil {
		onNone()
	}
}

// Unwrap returns the payload. It panics with ErrEmptyValue on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrEmptyValue)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if !o.some {
		return defaultValue
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(defaultValue func() T) T {
	if !o.some {
		return defaultValue()
	}
	return o.value
}

// Tee passes the whole Option to observer and returns it unchanged.
func (o Option[T]) Tee(observer func(Option[T])) Option[T] {
	if observer != nil {
		observer(o)
	}
	return o
}

// OkOr collapses the Option into a Result, using err for None.
func (o Option[T]) OkOr(err error) Result[T] {
	return FromOption(o, err)
}

// Equal reports whether both are None or both are Some with equal payloads. A payload
// with an Equal(T) bool method is compared with it, anything else deeply.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	return !o.some || equalValues(o.value, other.value)
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func (o Option[T]) present() bool {
	return o.some
}
