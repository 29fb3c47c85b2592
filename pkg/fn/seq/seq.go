package seq

import (
	"iter"

	"github.com/ib-77/optres/pkg/fn"
	"github.com/ib-77/optres/pkg/fn/solo"
)

// Range yields count consecutive integers starting at start.
func Range(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range count {
			if !yield(start + i) {
				return
			}
		}
	}
}

// ForEach runs action with each element and its index as the element is pulled, then
// yields the element unchanged.
func ForEach[T any](source iter.Seq[T], action func(item T, index int)) iter.Seq[T] {
	return func(yield func(T) bool) {
		index := 0
		for item := range source {
			action(item, index)
			index++
			if !yield(item) {
				return
			}
		}
	}
}

// ForEachMap yields transform(element, index) for each pulled element.
func ForEachMap[T, U any](source iter.Seq[T], transform func(item T, index int) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		index := 0
		for item := range source {
			out := transform(item, index)
			index++
			if !yield(out) {
				return
			}
		}
	}
}

// Map applies solo.Map to every element.
func Map[In, Out any](sources iter.Seq[In], factory func(In) Out) iter.Seq[fn.Result[Out]] {
	return func(yield func(fn.Result[Out]) bool) {
		for source := range sources {
			if !yield(solo.Map(source, factory)) {
				return
			}
		}
	}
}

// MapOption applies solo.MapOption to every element.
func MapOption[In, Out any](sources iter.Seq[In], factory func(In) Out) iter.Seq[fn.Option[Out]] {
	return func(yield func(fn.Option[Out]) bool) {
		for source := range sources {
			if !yield(solo.MapOption(source, factory)) {
				return
			}
		}
	}
}

// Try applies solo.Try to every element.
func Try[In, Out any](sources iter.Seq[In], factory func(In) (Out, error)) iter.Seq[fn.Result[Out]] {
	return func(yield func(fn.Result[Out]) bool) {
		for source := range sources {
			if !yield(solo.Try(source, factory)) {
				return
			}
		}
	}
}

// Then applies solo.Then to every Result, leaving Err elements untouched.
func Then[In, Out any](inputs iter.Seq[fn.Result[In]], factory func(In) Out) iter.Seq[fn.Result[Out]] {
	return func(yield func(fn.Result[Out]) bool) {
		for input := range inputs {
			if !yield(solo.Then(input, factory)) {
				return
			}
		}
	}
}

// Oks yields the payloads of the Ok elements in input order.
func Oks[T any](results iter.Seq[fn.Result[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range results {
			if r.IsErr() {
				continue
			}
			if !yield(r.Unwrap()) {
				return
			}
		}
	}
}

// Errs yields the errors of the Err elements in input order.
func Errs[T any](results iter.Seq[fn.Result[T]]) iter.Seq[error] {
	return func(yield func(error) bool) {
		for r := range results {
			if r.IsOk() {
				continue
			}
			if !yield(r.Err()) {
				return
			}
		}
	}
}

// Somes yields the payloads of the Some elements in input order.
func Somes[T any](options iter.Seq[fn.Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range options {
			v, ok := o.Get()
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Partition drains results, splitting payloads from errors.
func Partition[T any](results iter.Seq[fn.Result[T]]) ([]T, []error) {
	oks := make([]T, 0)
	errs := make([]error, 0)
	for r := range results {
		r.Match(
			func(v T) { oks = append(oks, v) },
			func(err error) { errs = append(errs, err) },
		)
	}
	return oks, errs
}
