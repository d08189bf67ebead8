package reconcile

import (
	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/vdom"
)

// PassStats summarizes one reconciliation pass.
type PassStats struct {
	Nodes   int // virtual nodes visited
	Patches int // host mutations applied
	Hooks   int // lifecycle hooks fired
}

// Engine drives virtual trees into a host document. It retains, per
// container, the previously rendered tree and the component instance
// records, and diffs against them on every Render call.
//
// The engine is single-threaded: a Render call runs to completion before
// returning, and calling Render for the same container from inside a
// lifecycle hook of an in-progress pass is disallowed (it panics with a
// structured render error).
type Engine struct {
	doc        host.Document
	containers map[host.Node]*containerState
	stats      PassStats
}

// containerState is the retained state for one container.
type containerState struct {
	root   *vdom.VNode                 // previous virtual tree
	nodes  map[*vdom.VNode]host.Node   // host node per retained element/text vnode
	insts  map[*vdom.VNode]*instance   // instance record per retained component vnode
	inPass bool                        // reentrancy guard
	valid  bool                        // false after an abandoned pass
}

// New creates an engine rendering into doc.
func New(doc host.Document) *Engine {
	return &Engine{
		doc:        doc,
		containers: make(map[host.Node]*containerState),
	}
}

// Render performs one synchronous diff/patch pass of node against the
// container's retained tree. On the first render into a container the whole
// tree is mounted (mount hooks only, no enter transitions); on subsequent
// renders the trees are diffed and minimal host mutations are applied.
//
// A panic from a render function or lifecycle hook propagates to the caller
// and invalidates the container's retained state; further Render calls for
// that container fail until Unmount clears it.
func (e *Engine) Render(node *vdom.VNode, container host.Node) error {
	if container == nil {
		return errors.New("E003")
	}
	if node == nil {
		return errors.New("E004")
	}

	st := e.containers[container]
	if st == nil {
		st = &containerState{
			nodes: make(map[*vdom.VNode]host.Node),
			insts: make(map[*vdom.VNode]*instance),
			valid: true,
		}
		e.containers[container] = st
	}
	if st.inPass {
		panic(errors.New("E002"))
	}
	if !st.valid {
		return errors.New("E001").WithDetail("a previous pass was abandoned; call Unmount to reset the container")
	}

	p := &pass{
		e:        e,
		doc:      e.doc,
		oldNodes: st.nodes,
		oldInsts: st.insts,
		nodes:    make(map[*vdom.VNode]host.Node),
		insts:    make(map[*vdom.VNode]*instance),
	}

	st.inPass = true
	defer func() {
		st.inPass = false
		if r := recover(); r != nil {
			st.valid = false
			panic(r)
		}
	}()

	if st.root == nil {
		p.mount(node, container, nil, false)
	} else {
		p.patch(st.root, node, container)
	}

	st.root = node
	st.nodes = p.nodes
	st.insts = p.insts
	e.stats = p.stats
	return nil
}

// Unmount tears down a container: every host child is detached, onUnmount
// fires once per contained component instance, and ref callbacks receive
// nil. Enter/leave transitions are skipped for this degenerate full-clear
// case. Unmount also resets a container whose state was invalidated by an
// abandoned pass.
func (e *Engine) Unmount(container host.Node) {
	st := e.containers[container]
	if st == nil {
		return
	}
	delete(e.containers, container)

	p := &pass{
		e:        e,
		doc:      e.doc,
		oldNodes: st.nodes,
		oldInsts: st.insts,
		nodes:    make(map[*vdom.VNode]host.Node),
		insts:    make(map[*vdom.VNode]*instance),
	}
	// An abandoned pass can leave host nodes the retained maps never saw,
	// so the container is cleared child by child when the host can
	// enumerate them.
	if lister, ok := container.(interface{ ChildNodes() []host.Node }); ok {
		for _, child := range lister.ChildNodes() {
			container.RemoveChild(child)
			p.stats.Patches++
		}
	} else if n := p.hostOf(st.root); n != nil {
		container.RemoveChild(n)
		p.stats.Patches++
	}
	for _, fn := range p.collectTeardown(st.root) {
		fn()
	}
	e.stats = p.stats
}

// Stats returns the statistics of the most recent pass.
func (e *Engine) Stats() PassStats {
	return e.stats
}

// fireHook invokes a lifecycle hook if registered. Used by completion
// tokens, which run outside any pass. A panicking hook propagates to
// whoever invoked the token.
func (e *Engine) fireHook(hook vdom.HookFunc, node host.Node, data any, args []any) {
	if hook == nil {
		return
	}
	hook(node, data, args...)
}
