// Package chain provides a fluent wrapper around outcome.Result[T] for
// building synchronous pipelines without handling both branches at every
// step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry/Map: sequence steps on the success track
// - Ensure/Tee: checks and side effects that keep the result intact
// - Or/And: combine alternative and required chains
// - Finally: collapse the chain into a final value via handlers
package chain
