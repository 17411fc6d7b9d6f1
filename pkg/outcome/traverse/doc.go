// Package traverse lifts per-element fallible operations over ordered
// collections into one aggregate outcome.
//
// Two policies compete: Sequence/Traverse stop at the first failure and
// never run later operations, while SequenceValid/TraverseValid never stop
// early and accumulate every error in element order. Parallel adds bounded
// concurrency on top of the short-circuit policy: all operations are started
// and awaited, results land in a position-indexed buffer so the payload
// order always matches the input order, and only the post-scan decides the
// aggregate.
//
// Collect, Partition, FirstSuccess, FirstSome and Choose cover the
// non-aggregating scans. Every entry point that runs user operations checks
// the context at element granularity; cancellation of in-flight parallel
// operations is cooperative through their context.
package traverse
