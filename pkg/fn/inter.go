package fn

// Outcome is implemented by Option and Result. It lets the free functions below treat
// both containers alike: "present" means Some or Ok.
type Outcome[T any] interface {
	// Unwrap returns the payload or panics (ErrEmptyValue for None, the stored error for Err)
	Unwrap() T
	// UnwrapOr returns the payload or defaultValue
	UnwrapOr(defaultValue T) T
	present() bool
}

// Match calls onPresent with the payload of a Some/Ok, otherwise onAbsent.
func Match[T any](o Outcome[T], onPresent func(T), onAbsent func()) {
	if o.present() {
		if onPresent != nil {
			onPresent(o.Unwrap())
		}
		return
	}
	if onAbsent != nil {
		onAbsent()
	}
}

func Unwrap[T any](o Outcome[T]) T {
	return o.Unwrap()
}

func UnwrapOr[T any](o Outcome[T], defaultValue T) T {
	return o.UnwrapOr(defaultValue)
}

// IsPresent reports whether o is Some or Ok.
func IsPresent[T any](o Outcome[T]) bool {
	return o.present()
}
