// Package seq lifts the solo combinators over iter.Seq. Every function here is
// lazy: building a sequence does no work, and each element's factory or action
// runs only when that element is pulled by the consumer. Failures stay per
// element, so one Err never stops the remaining elements from being processed.
package seq
