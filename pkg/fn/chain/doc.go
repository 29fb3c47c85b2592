// Package chain provides a fluent wrapper around fn.Result[T]
// for building synchronous chains using solo primitives.
//
// It composes Then, Try, Map, Check, Tee and Finally behind a
// convenient Chain[T] type, so each step does not need to branch on the
// previous outcome by hand. Once a step fails, later steps are skipped and
// the first error travels to the end of the chain.
//
// Key operations:
// - Start/FromValue/FromOption: begin a chain
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U), capturing panics
// - Ensure: run side effects on success without changing the result
// - Validate: fail the chain on the first failing check
// - Or: fall back to the first alternative chain that succeeded
// - Finally: collapse the chain into a final value via handlers
package chain
