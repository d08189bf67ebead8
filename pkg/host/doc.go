// Package host defines the host-tree abstraction the reconciliation engine
// mutates, plus an in-memory implementation.
//
// The engine only knows Document (node factory) and Node (tree and attribute
// mutation). Memory is the reference backend: a plain tree of MemoryNode
// values that tests inspect directly and the render package serializes to
// HTML. The server package wraps Memory in a recording backend that also
// emits binary patches for connected clients.
package host
