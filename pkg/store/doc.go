// Package store defines the parameter-store contract the rc registry writes
// through, plus an in-memory reference backend that stands in for a plotting
// library's native configuration table.
//
// Responsibilities:
//   - Store is a flat mapping from dotted keys to opaque values with a
//     resettable baseline and named styles layered on top of it.
//   - The registry stays persistence-agnostic; adapters for a real backend
//     implement Store and are injected at registry construction.
//
// Key order:
//
//	Keys() is sorted so category scans over a store are deterministic.
package store
