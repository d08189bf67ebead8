// Package protocol defines Loom's binary wire format for streaming tree
// updates to a client.
//
// The format is frame-based: each frame carries a 4-byte header (type,
// flags, payload length) followed by a payload encoded with varints and
// length-prefixed strings. Two payload types do the real work:
//
//   - FrameTree carries a full WireNode snapshot of a container, sent once
//     when a client connects.
//   - FramePatches carries a PatchBatch: the host mutations of one
//     reconciliation pass, addressed by the numeric node IDs assigned at
//     creation. A client replays the batch against its local copy of the
//     tree to stay in sync.
//
// Decoding is defensive: length prefixes are validated against the
// remaining buffer and against fixed allocation limits, so a malformed or
// hostile payload fails with a structured error instead of a huge
// allocation.
package protocol
