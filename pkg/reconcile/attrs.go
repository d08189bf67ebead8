package reconcile

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/vdom"
)

// attrString stringifies a virtual attribute value for the host tree.
// The second return value reports whether the attribute is present at all:
// nil values and false booleans are absent, true booleans are present with
// an empty value (rendered as a valueless attribute).
func attrString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return "", val
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// patchAttrs reconciles element attributes: keys present in one map but not
// equal in both are set, removed keys are removed. The reserved "ref" key
// never reaches the host tree.
func (p *pass) patchAttrs(node host.Node, oldProps, newProps vdom.Props) {
	for key, oldVal := range oldProps {
		if key == "ref" {
			continue
		}
		oldStr, oldPresent := attrString(oldVal)

		newVal, exists := newProps[key]
		if !exists {
			if oldPresent {
				node.RemoveAttribute(key)
				p.stats.Patches++
			}
			continue
		}
		newStr, newPresent := attrString(newVal)
		switch {
		case oldPresent && !newPresent:
			node.RemoveAttribute(key)
			p.stats.Patches++
		case newPresent && (!oldPresent || oldStr != newStr):
			node.SetAttribute(key, newStr)
			p.stats.Patches++
		}
	}

	for key, newVal := range newProps {
		if key == "ref" {
			continue
		}
		if _, exists := oldProps[key]; exists {
			continue
		}
		if s, present := attrString(newVal); present {
			node.SetAttribute(key, s)
			p.stats.Patches++
		}
	}

	p.updateRef(node, oldProps, newProps)
}

// updateRef honors a ref callback that appears, changes, or disappears on
// an update pass: the previous ref is released with nil, the new one
// receives the host node. Refs compare by function identity, so an inline
// closure of the same literal does not re-fire every pass.
func (p *pass) updateRef(node host.Node, oldProps, newProps vdom.Props) {
	oldRef := refFunc(oldProps)
	newRef := refFunc(newProps)
	if sameRef(oldRef, newRef) {
		return
	}
	if oldRef != nil {
		oldRef(nil)
	}
	if newRef != nil {
		newRef(node)
	}
}

func sameRef(a, b vdom.RefFunc) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
