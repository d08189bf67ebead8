package reconcile

import (
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/vdom"
)

// mountState is the lifecycle state of a component instance.
type mountState uint8

const (
	stateUnmounted mountState = iota
	stateEntering
	stateMounted
	stateLeaving
)

// String returns the string representation of the mountState.
func (s mountState) String() string {
	switch s {
	case stateUnmounted:
		return "unmounted"
	case stateEntering:
		return "entering"
	case stateMounted:
		return "mounted"
	case stateLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// instance is the retained, engine-owned record for one live component
// position in the tree. It survives across passes as long as the same
// identity (key, or position among same-definition siblings) appears in the
// new tree.
type instance struct {
	def *vdom.Definition
	key string // resolved identity key, "" for positional

	data   any         // last input data
	args   []any       // last constant arguments (refreshed even on memo hits)
	output *vdom.VNode // last render output
	node   host.Node   // host node of the output root
	parent host.Node   // host parent, needed for deferred leave detach

	state mountState
	done  bool // current transition's token already fired; reset on each transition
}

// enterToken builds the one-shot enter completion token for inst. Invoking
// it more than once is a no-op; never invoking it leaves the instance
// entering indefinitely.
func (e *Engine) enterToken(inst *instance) func() {
	return func() {
		if inst.state != stateEntering || inst.done {
			return
		}
		inst.done = true
		inst.state = stateMounted
		e.fireHook(inst.def.Opts.DidEnter, inst.node, inst.data, inst.args)
	}
}

// leaveToken builds the one-shot leave completion token for inst. The first
// invocation detaches the host node, fires didLeave, runs the captured
// subtree teardown (nested unmounts and ref callbacks), and finally fires
// the instance's own onUnmount.
func (e *Engine) leaveToken(inst *instance, teardown []func()) func() {
	return func() {
		if inst.state != stateLeaving || inst.done {
			return
		}
		inst.done = true
		if inst.parent != nil {
			inst.parent.RemoveChild(inst.node)
		}
		e.fireHook(inst.def.Opts.DidLeave, inst.node, inst.data, inst.args)
		for _, fn := range teardown {
			fn()
		}
		e.fireHook(inst.def.Opts.OnUnmount, inst.node, inst.data, inst.args)
		inst.state = stateUnmounted
	}
}
