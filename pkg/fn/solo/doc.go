// Package solo contains single-value, synchronous primitives that operate on
// fn.Option[T] and fn.Result[T]. This is where caller supplied factories run:
// a panic inside a factory never escapes a solo combinator, it is captured and
// stored as Err (or None for the Option flavored variants).
//
// Highlights:
// - Capture: run a function and turn a panic into an error
// - Map/MapOption/Try: wrap a raw value through a factory
// - Then/ThenOption/Bind/BindOption: continue from an existing Option or Result,
//   short-circuiting on None/Err
// - Validate/Check: multi-predicate checks with first-failure semantics
// - Tee/TeeIf/TeeSome/DoubleTee: side-effect helpers
// - Finally: reduce a Result to a concrete value
package solo
