package host

// Document creates nodes for a host tree. The reconciliation engine never
// touches a concrete backend directly; it only goes through Document and
// Node, so serialization-only and real-DOM backends share the engine
// unchanged.
type Document interface {
	// CreateNode creates an element node with the given tag.
	CreateNode(tag string) Node

	// CreateTextNode creates a text leaf with the given content.
	CreateTextNode(text string) Node
}

// Node is a mutable node in a host tree.
//
// Attribute values are plain strings; the engine stringifies virtual-node
// attribute values before calling SetAttribute. An empty value is legal and
// backends render it as a valueless (boolean) attribute.
type Node interface {
	// SetAttribute sets or replaces an attribute.
	SetAttribute(key, value string)

	// RemoveAttribute removes an attribute. Removing an absent key is a no-op.
	RemoveAttribute(key string)

	// AppendChild appends child as the last child of this node.
	// If child is already attached elsewhere it is detached first.
	AppendChild(child Node)

	// InsertBefore inserts child immediately before ref. A nil ref appends.
	// If child is already attached elsewhere it is detached first.
	InsertBefore(child, ref Node)

	// RemoveChild detaches child from this node. Removing a non-child is a
	// no-op.
	RemoveChild(child Node)

	// SetTextContent replaces the text content of a text node.
	SetTextContent(text string)
}
