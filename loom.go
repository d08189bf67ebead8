// Package loom provides the public API for the Loom rendering library.
//
// This is the recommended import for most applications:
//
//	import "github.com/loom-ui/loom"
//
// Usage:
//
//	card := loom.Component(renderCard, loom.Options{KeyFn: cardKey})
//	engine := loom.NewEngine(loom.NewMemoryDocument())
//	err := engine.Render(card(data), container)
package loom

import (
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/reconcile"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vdom"
)

// =============================================================================
// Virtual tree (re-export from pkg/vdom)
// =============================================================================

// VNode is a node in the virtual tree: an element, text, or a component
// instance awaiting reconciliation.
type VNode = vdom.VNode

// Attr is a single attribute applied to an element node.
type Attr = vdom.Attr

// Ctor is a component constructor produced by Component.
type Ctor = vdom.Ctor

// Options configures a component's key derivation and lifecycle hooks.
type Options = vdom.Options

// HookFunc is a lifecycle callback invoked with the instance's host node.
type HookFunc = vdom.HookFunc

// TransitionFunc is a deferred lifecycle callback with a completion token.
type TransitionFunc = vdom.TransitionFunc

// Component turns a pure render function into a memoized, keyed component
// constructor.
//
// Example:
//
//	var row = loom.Component(func(data any, args ...any) *loom.VNode {
//	    return loom.Li(data.(string))
//	}, loom.Options{KeyFn: func(data any) string { return data.(string) }})
func Component(render vdom.RenderFunc, opts Options) Ctor {
	return vdom.Component(render, opts)
}

// El constructs an element node. Most callers use the tag helpers below.
var El = vdom.El

// Text constructs a text node.
var Text = vdom.Text

// Common element constructors.
var (
	Div    = vdom.Div
	Span   = vdom.Span
	P      = vdom.P
	H1     = vdom.H1
	H2     = vdom.H2
	H3     = vdom.H3
	Ul     = vdom.Ul
	Ol     = vdom.Ol
	Li     = vdom.Li
	A      = vdom.A
	Button = vdom.Button
	Input  = vdom.Input
	Form   = vdom.Form
	Img    = vdom.Img
	Header = vdom.Header
	Footer = vdom.Footer
	Main   = vdom.Main
	Nav    = vdom.Nav
)

// Common attribute helpers.
var (
	ID    = vdom.ID
	Class = vdom.Class
	Style = vdom.Style
	Key   = vdom.Key
	Ref   = vdom.Ref
	Set   = vdom.Set
)

// =============================================================================
// Hosts and rendering
// =============================================================================

// Document is the host tree factory an Engine renders through.
type Document = host.Document

// Node is a mutable node in a host tree.
type Node = host.Node

// NewMemoryDocument returns an in-memory host document, the standard host
// for server-side rendering and tests.
func NewMemoryDocument() *host.Memory {
	return host.NewMemory()
}

// Engine reconciles virtual trees into a host document.
type Engine = reconcile.Engine

// NewEngine returns an Engine bound to the given host document.
func NewEngine(doc host.Document) *Engine {
	return reconcile.New(doc)
}

// RenderConfig controls HTML serialization.
type RenderConfig = render.Config

// NewRenderer returns an HTML serializer for host trees.
func NewRenderer(cfg RenderConfig) *render.Renderer {
	return render.NewRenderer(cfg)
}
