// Package fault provides an immutable causal error chain.
//
// A Fault node carries a message, a closed Kind classification, an optional
// captured trace, ordered metadata with a closed set of value shapes, and an
// owned source node. Extension methods (Wrap, WithMeta, WithKind, WithTrace)
// always return a new node, so existing nodes never change and chains can be
// shared freely across goroutines.
//
// From converts a native error, classifying it against a fixed table and
// recursively copying its unwrap chain into owned source nodes. Render
// prints the chain as an indented "Caused by:" tree and stays finite even
// for hand-forged cyclic or over-deep chains.
package fault
