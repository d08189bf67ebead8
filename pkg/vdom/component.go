package vdom

import (
	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/host"
)

// RenderFunc is a pure render function: data plus constant arguments in,
// virtual tree out.
type RenderFunc func(data any, args ...any) *VNode

// KeyFunc derives a reconciliation key from a component's input data.
type KeyFunc func(data any) string

// HookFunc is a lifecycle callback. It receives the instance's host node,
// the data of the render that produced it, and the current constant
// arguments.
type HookFunc func(node host.Node, data any, args ...any)

// TransitionFunc is a deferred lifecycle callback. The done callback is a
// one-shot completion token: the first invocation completes the transition,
// later invocations are no-ops, and never invoking it leaves the transition
// pending indefinitely.
type TransitionFunc func(node host.Node, done func(), data any, args ...any)

// Options configures a component definition. Any omitted hook is a no-op.
type Options struct {
	// KeyFn derives the instance key from the input data. A KeyFn-derived
	// key takes precedence over an explicit "key" attribute on the rendered
	// node.
	KeyFn KeyFunc

	OnMount   HookFunc // After first render, host node attached
	OnUpdate  HookFunc // After a re-render caused by changed data
	OnRender  HookFunc // After every render (mount and update)
	OnUnmount HookFunc // After removal, with the last-rendered data

	WillEnter TransitionFunc // Insertion into an already-live parent
	DidEnter  HookFunc       // After the enter token fires
	WillLeave TransitionFunc // Before detaching from a live parent
	DidLeave  HookFunc       // After the leave token fires, before OnUnmount
}

// Definition is an immutable component definition: the render function, key
// extraction, and lifecycle hooks. Two component-instance nodes share an
// identity only if they reference the same Definition.
type Definition struct {
	Render RenderFunc
	Opts   Options
}

// Ctor produces a component-instance VNode. Calling it does not render;
// rendering is deferred to the reconciliation engine.
type Ctor func(data any, args ...any) *VNode

// Component turns a pure render function into a memoized, keyed component
// constructor. Panics with a node error if render is nil.
func Component(render RenderFunc, opts Options) Ctor {
	if render == nil {
		panic(errors.New("E041"))
	}
	def := &Definition{Render: render, Opts: opts}
	return func(data any, args ...any) *VNode {
		node := &VNode{
			Kind: KindComponent,
			Def:  def,
			Data: data,
			Args: args,
		}
		if opts.KeyFn != nil {
			node.Key = opts.KeyFn(data)
		}
		return node
	}
}
