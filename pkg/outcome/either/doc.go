// Package either provides the Either[L, R] dual-branch value. Unlike
// outcome.Result neither side is an error side: both alternatives are
// equally valid and each side can be mapped, bound, inspected, swapped or
// projected onto an opt.Option independently.
package either
