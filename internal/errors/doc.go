// Package errors provides structured errors for Loom.
//
// Every error has a unique code (e.g. "E030"), a category matching the
// engine's error taxonomy (render, hook, identity, node, protocol, config,
// cli), and optional detail and fix-suggestion text. Errors are created from
// the code registry:
//
//	err := errors.New("E030").WithDetail("key %q appears twice", key)
//
// LoomError supports errors.Is/As via Unwrap, and Format renders a
// terminal-friendly representation for the CLI.
package errors
