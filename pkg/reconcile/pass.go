package reconcile

import (
	"sort"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/vdom"
)

// pass is the working state of one reconciliation pass. It reads the
// container's retained maps and builds the next ones; the engine commits
// them only when the pass completes without panicking.
type pass struct {
	e   *Engine
	doc host.Document

	oldNodes map[*vdom.VNode]host.Node
	oldInsts map[*vdom.VNode]*instance
	nodes    map[*vdom.VNode]host.Node
	insts    map[*vdom.VNode]*instance

	stats PassStats
}

// fire invokes a lifecycle hook during the pass.
func (p *pass) fire(hook vdom.HookFunc, node host.Node, data any, args []any) {
	if hook == nil {
		return
	}
	p.stats.Hooks++
	hook(node, data, args...)
}

// mount materializes a virtual subtree into parent before the given anchor
// (nil appends). live indicates the parent host node existed before this
// pass began; only then do enter transitions apply, and only to n itself —
// descendants are part of a fresh subtree and get plain mounts.
func (p *pass) mount(n *vdom.VNode, parent, before host.Node, live bool) host.Node {
	p.stats.Nodes++

	switch n.Kind {
	case vdom.KindText:
		node := p.doc.CreateTextNode(n.Text)
		parent.InsertBefore(node, before)
		p.stats.Patches++
		p.nodes[n] = node
		return node

	case vdom.KindElement:
		node := p.doc.CreateNode(n.Tag)
		for _, key := range sortedPropKeys(n.Props) {
			if key == "ref" {
				continue
			}
			if s, present := attrString(n.Props[key]); present {
				node.SetAttribute(key, s)
				p.stats.Patches++
			}
		}
		parent.InsertBefore(node, before)
		p.stats.Patches++
		for _, child := range n.Children {
			p.mount(child, node, nil, false)
		}
		if rf := refFunc(n.Props); rf != nil {
			rf(node)
		}
		p.nodes[n] = node
		return node

	case vdom.KindComponent:
		return p.mountComponent(n, parent, before, live)
	}
	return nil
}

// mountComponent creates the instance record, renders, mounts the output,
// and fires onMount/onRender, then willEnter when entering.
func (p *pass) mountComponent(n *vdom.VNode, parent, before host.Node, live bool) host.Node {
	inst := &instance{
		def:    n.Def,
		key:    n.Key,
		data:   n.Data,
		args:   n.Args,
		parent: parent,
	}

	out := n.Def.Render(n.Data, n.Args...)
	if out == nil {
		panic(errors.Newf(errors.CategoryRender, "component render function returned nil"))
	}
	inst.output = out
	inst.node = p.mount(out, parent, before, false)
	p.insts[n] = inst

	opts := n.Def.Opts
	if live && opts.WillEnter != nil {
		inst.state = stateEntering
	} else {
		inst.state = stateMounted
	}

	p.fire(opts.OnMount, inst.node, n.Data, n.Args)
	p.fire(opts.OnRender, inst.node, n.Data, n.Args)

	if inst.state == stateEntering {
		p.stats.Hooks++
		opts.WillEnter(inst.node, p.e.enterToken(inst), n.Data, n.Args...)
	}
	return inst.node
}

// patch reconciles one retained virtual node against its replacement.
func (p *pass) patch(oldN, newN *vdom.VNode, parent host.Node) {
	p.stats.Nodes++

	// Memoized reuse hands the identical subtree back; carry its records
	// forward untouched.
	if oldN == newN {
		p.adopt(oldN)
		return
	}

	if oldN.Kind != newN.Kind {
		p.replace(oldN, newN, parent)
		return
	}

	switch newN.Kind {
	case vdom.KindText:
		node := p.oldNodes[oldN]
		p.nodes[newN] = node
		if oldN.Text != newN.Text {
			node.SetTextContent(newN.Text)
			p.stats.Patches++
		}

	case vdom.KindElement:
		if oldN.Tag != newN.Tag {
			p.replace(oldN, newN, parent)
			return
		}
		node := p.oldNodes[oldN]
		p.nodes[newN] = node
		p.patchAttrs(node, oldN.Props, newN.Props)
		p.reconcileChildren(node, oldN.Children, newN.Children)

	case vdom.KindComponent:
		if oldN.Def != newN.Def {
			p.replace(oldN, newN, parent)
			return
		}
		p.patchComponent(oldN, newN, parent)
	}
}

// patchComponent applies §memoization: equal data reuses the stored output
// verbatim (render skipped, constant arguments refreshed, no hooks);
// changed data re-renders and fires onUpdate then onRender.
func (p *pass) patchComponent(oldN, newN *vdom.VNode, parent host.Node) {
	inst := p.oldInsts[oldN]
	if inst == nil {
		// No retained record; mount fresh. Happens only if retained maps
		// were corrupted externally.
		p.mount(newN, parent, nil, false)
		return
	}

	if vdom.EqualInputs(inst.data, newN.Data) {
		inst.data = newN.Data
		inst.args = newN.Args
		inst.parent = parent
		p.adopt(inst.output)
		p.insts[newN] = inst
		return
	}

	out := newN.Def.Render(newN.Data, newN.Args...)
	if out == nil {
		panic(errors.Newf(errors.CategoryRender, "component render function returned nil"))
	}
	p.patch(inst.output, out, parent)
	inst.output = out
	inst.node = p.hostOf(out)
	inst.data = newN.Data
	inst.args = newN.Args
	inst.parent = parent
	p.insts[newN] = inst

	opts := newN.Def.Opts
	p.fire(opts.OnUpdate, inst.node, newN.Data, newN.Args)
	p.fire(opts.OnRender, inst.node, newN.Data, newN.Args)
}

// replace swaps one subtree for another: the new subtree mounts before the
// old host node (entering the live parent), then the old subtree is removed
// with full unmount, honoring a leave transition on a replaced component.
func (p *pass) replace(oldN, newN *vdom.VNode, parent host.Node) {
	anchor := p.hostOf(oldN)
	p.mount(newN, parent, anchor, true)
	p.remove(oldN, parent)
}

// remove detaches a retained subtree. A component root with a registered
// willLeave stays attached until its completion token fires; everything
// else detaches synchronously with recursive onUnmount and ref(nil).
func (p *pass) remove(oldN *vdom.VNode, parent host.Node) {
	node := p.hostOf(oldN)

	if oldN.Kind == vdom.KindComponent {
		if inst := p.oldInsts[oldN]; inst != nil && inst.def.Opts.WillLeave != nil && inst.state != stateLeaving {
			inst.state = stateLeaving
			inst.done = false // a completed enter must not block the leave token
			inst.parent = parent
			teardown := p.collectTeardown(inst.output)
			p.stats.Hooks++
			inst.def.Opts.WillLeave(node, p.e.leaveToken(inst, teardown), inst.data, inst.args...)
			return
		}
	}

	if node != nil {
		parent.RemoveChild(node)
		p.stats.Patches++
	}
	for _, fn := range p.collectTeardown(oldN) {
		fn()
	}
}

// adopt carries a reused subtree's records from the previous pass's maps
// into the next ones without touching the host tree.
func (p *pass) adopt(n *vdom.VNode) {
	if n == nil {
		return
	}
	if node, ok := p.oldNodes[n]; ok {
		p.nodes[n] = node
	}
	if inst, ok := p.oldInsts[n]; ok {
		p.insts[n] = inst
		p.adopt(inst.output)
		return
	}
	for _, child := range n.Children {
		p.adopt(child)
	}
}

// hostOf resolves the host node materialized for a virtual node, looking
// through component instances to their output roots.
func (p *pass) hostOf(n *vdom.VNode) host.Node {
	if n == nil {
		return nil
	}
	if node, ok := p.nodes[n]; ok {
		return node
	}
	if node, ok := p.oldNodes[n]; ok {
		return node
	}
	if inst, ok := p.insts[n]; ok {
		return p.hostOf(inst.output)
	}
	if inst, ok := p.oldInsts[n]; ok {
		return p.hostOf(inst.output)
	}
	return nil
}

// collectTeardown walks a retained subtree bottom-up and returns the
// unmount work: ref(nil) callbacks and one onUnmount per contained
// component instance, children before the instances that contain them.
func (p *pass) collectTeardown(n *vdom.VNode) []func() {
	var fns []func()
	p.appendTeardown(n, &fns)
	return fns
}

func (p *pass) appendTeardown(n *vdom.VNode, fns *[]func()) {
	if n == nil {
		return
	}
	switch n.Kind {
	case vdom.KindElement:
		for _, child := range n.Children {
			p.appendTeardown(child, fns)
		}
		if rf := refFunc(n.Props); rf != nil {
			*fns = append(*fns, func() { rf(nil) })
		}

	case vdom.KindComponent:
		inst := p.oldInsts[n]
		if inst == nil {
			inst = p.insts[n]
		}
		if inst == nil {
			return
		}
		p.appendTeardown(inst.output, fns)
		captured := inst
		e := p.e
		*fns = append(*fns, func() {
			e.fireHook(captured.def.Opts.OnUnmount, captured.node, captured.data, captured.args)
			captured.state = stateUnmounted
		})
	}
}

// refFunc extracts the reserved "ref" callback from props.
func refFunc(props vdom.Props) vdom.RefFunc {
	if props == nil {
		return nil
	}
	switch fn := props["ref"].(type) {
	case vdom.RefFunc:
		return fn
	case func(host.Node):
		return fn
	}
	return nil
}

// sortedPropKeys returns prop keys in deterministic order for mounting.
func sortedPropKeys(props vdom.Props) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
