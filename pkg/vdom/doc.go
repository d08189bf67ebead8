// Package vdom provides Loom's virtual node model.
//
// A VNode is an immutable description of a UI element, text leaf, or
// component instance, built before any host tree exists. Updates never
// mutate a VNode; each render produces a new tree which the reconcile
// package diffs against the previous one.
//
// # Element API
//
// Elements are created with variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P("Content"),
//	)
//
// Raw strings in a child position coerce to text leaves. Nil arguments are
// skipped, so If/When helpers compose directly into builder calls. An
// argument of any other type panics with a structured node error; malformed
// trees fail at construction, not during diffing.
//
// # Components
//
// Component wraps a pure render function into a memoized constructor:
//
//	Item := vdom.Component(func(data any, args ...any) *vdom.VNode {
//	    d := data.(Todo)
//	    return vdom.Li(d.Title)
//	}, vdom.Options{
//	    KeyFn: func(data any) string { return data.(Todo).ID },
//	})
//
// Calling the constructor produces a component-instance VNode; rendering is
// deferred to the engine, which skips the render function entirely when
// EqualInputs holds for the previous and next data.
package vdom
