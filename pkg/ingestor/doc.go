// Package ingestor walks a compiled JSON document and extracts a totally
// ordered sequence of Kubernetes manifests.
//
// The walk is an iterative depth-first traversal that treats every JSON
// object either as a manifest (has "kind" and "apiVersion" strings) or as an
// intermediate grouping object whose keys become path segments. Manifests
// are tagged with a Tracking chain recording the field/depth/order of every
// ancestor, optionally overridden by a "kct.io/order" annotation, and are
// returned sorted by that chain so callers get a safe apply/delete order.
//
// This package is grounded on the original ingestor's track/order/path
// modules (kct_kube), reimplemented with Go's container/heap instead of a
// binary heap crate and regexp instead of a compiled Rust regex.
package ingestor
