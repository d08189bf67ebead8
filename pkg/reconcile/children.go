package reconcile

import (
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/vdom"
)

// reconcileChildren matches an element's old child list against the new
// one and applies the minimal insert/move/remove/patch sequence.
//
// Identity: a child's Key (explicit attribute or KeyFn-derived, the latter
// taking precedence because the constructor writes it) matches keyed
// children across positions; children without a key match strictly by
// index, against an old child that is also unkeyed. Duplicate keys among
// siblings resolve first-occurrence-wins: the first old child owns the key
// and the first new child claims it; later duplicates are treated as
// unkeyed inserts/removes.
//
// New children are processed left to right so lifecycle hooks fire in
// document order. Placement uses a cursor over the unconsumed old block:
// each new child is patched or mounted immediately before the first
// unconsumed old host node, which yields correct final order with one move
// per displaced keyed child and no unmount/remount.
func (p *pass) reconcileChildren(parent host.Node, old, new []*vdom.VNode) {
	// Key index of the old list, first occurrence wins.
	var oldKey map[string]int
	for i, child := range old {
		if k := child.Key; k != "" {
			if oldKey == nil {
				oldKey = make(map[string]int)
			}
			if _, dup := oldKey[k]; !dup {
				oldKey[k] = i
			}
		}
	}

	// Pair each new child with an old index, or -1 for insert.
	pairFor := make([]int, len(new))
	var claimed map[string]bool
	for i, child := range new {
		pairFor[i] = -1
		if k := child.Key; k != "" {
			if claimed[k] {
				continue // duplicate new key, treated as insert
			}
			if claimed == nil {
				claimed = make(map[string]bool)
			}
			claimed[k] = true
			if j, ok := oldKey[k]; ok {
				pairFor[i] = j
			}
		} else if i < len(old) && old[i].Key == "" {
			pairFor[i] = i
		}
	}

	consumed := make([]bool, len(old))
	cursor := 0

	// firstUnconsumed advances the cursor past consumed old children and
	// returns the index of the head of the remaining old block, or -1.
	firstUnconsumed := func() int {
		for cursor < len(old) && consumed[cursor] {
			cursor++
		}
		if cursor < len(old) {
			return cursor
		}
		return -1
	}

	// anchor is the host node the next placement goes before.
	anchor := func() host.Node {
		for k := cursor; k < len(old); k++ {
			if !consumed[k] {
				if n := p.hostOf(old[k]); n != nil {
					return n
				}
			}
		}
		return nil
	}

	for i, child := range new {
		j := pairFor[i]
		if j < 0 {
			p.mount(child, parent, anchor(), true)
			continue
		}

		inPlace := j == firstUnconsumed()
		consumed[j] = true
		p.patch(old[j], child, parent)

		if !inPlace {
			// Keyed child found at a different position: reorder the host
			// node without unmounting it.
			if node := p.hostOf(child); node != nil {
				parent.InsertBefore(node, anchor())
				p.stats.Patches++
			}
		}
	}

	for j, child := range old {
		if !consumed[j] {
			p.remove(child, parent)
		}
	}
}
