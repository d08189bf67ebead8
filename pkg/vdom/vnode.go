package vdom

import "github.com/loom-ui/loom/pkg/host"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text leaf
	KindComponent              // Component instance
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is an immutable virtual node. A VNode is never mutated after
// construction; every update produces a new tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes, including the reserved "ref" callback
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key ("" = positional identity)
	Text     string   // For KindText

	// Component-instance fields.
	Def  *Definition // Component definition
	Data any         // Input data, compared with EqualInputs across renders
	Args []any       // Constant arguments, never compared
}

// Props holds attributes. Values are stringified by the engine before they
// reach the host tree, except the reserved keys "key" and "ref".
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// RefFunc is the value of a "ref" attribute. It receives the host node when
// the element is created, and nil when the element is removed.
type RefFunc func(node host.Node)
