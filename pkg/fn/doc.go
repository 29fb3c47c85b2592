// Package fn defines the two containers the rest of the module is built on:
// Option[T], a value that may be absent, and Result[T], the outcome of an
// operation that may fail with an error.
//
// Both are immutable values. Construct them through the smart constructors
// (Some, None, Of, Ok, Err, FromOption) rather than struct literals, and
// consume them with Match, Unwrap, UnwrapOr or Tee. Absence and failure are
// kept apart: unwrapping a None panics with ErrEmptyValue, unwrapping an Err
// panics with the error it carries.
package fn
