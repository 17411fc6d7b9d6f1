// Package outcome provides the Result[T] fallible value and its combinator
// surface for Railway-Oriented pipelines.
//
// A Result is Success, Failure or Cancel; combinators short-circuit on the
// first non-success so a pipeline stops at the step that failed and no later
// step runs. Domain failures are values, never panics; panics are reserved
// for programmer errors such as missing match arms.
//
// Key operations:
// - Success/Fail/Cancel/From: construct a Result
// - Map/Bind/Try: transform or sequence steps on the success track
// - Ensure/Tee/TeeErr: checks and side effects that keep the result intact
// - Match/MatchDo/Finally: eliminate a Result into a plain value
// - FromOption/ToOption: convert to and from opt.Option
package outcome
