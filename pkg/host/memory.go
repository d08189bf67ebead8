package host

// Memory is an in-memory Document. It backs tests, the HTML serializer, and
// the live-preview server's mirror tree.
type Memory struct{}

// NewMemory creates an in-memory document.
func NewMemory() *Memory {
	return &Memory{}
}

// CreateNode implements Document.
func (m *Memory) CreateNode(tag string) Node {
	return &MemoryNode{Tag: tag, Attrs: make(map[string]string)}
}

// CreateTextNode implements Document.
func (m *Memory) CreateTextNode(text string) Node {
	return &MemoryNode{IsText: true, Text: text}
}

// NewContainer creates a detached element node to render into. The tag is
// only visible when the container itself is serialized.
func (m *Memory) NewContainer(tag string) *MemoryNode {
	return m.CreateNode(tag).(*MemoryNode)
}

// MemoryNode is a node in an in-memory host tree.
type MemoryNode struct {
	Tag    string
	Text   string
	IsText bool
	Attrs  map[string]string
	Kids   []*MemoryNode

	parent *MemoryNode
}

// SetAttribute implements Node.
func (n *MemoryNode) SetAttribute(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// RemoveAttribute implements Node.
func (n *MemoryNode) RemoveAttribute(key string) {
	delete(n.Attrs, key)
}

// AppendChild implements Node.
func (n *MemoryNode) AppendChild(child Node) {
	n.InsertBefore(child, nil)
}

// InsertBefore implements Node.
func (n *MemoryNode) InsertBefore(child, ref Node) {
	c, ok := child.(*MemoryNode)
	if !ok || c == nil {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}

	idx := len(n.Kids)
	if r, ok := ref.(*MemoryNode); ok && r != nil {
		for i, kid := range n.Kids {
			if kid == r {
				idx = i
				break
			}
		}
	}

	n.Kids = append(n.Kids, nil)
	copy(n.Kids[idx+1:], n.Kids[idx:])
	n.Kids[idx] = c
	c.parent = n
}

// RemoveChild implements Node.
func (n *MemoryNode) RemoveChild(child Node) {
	c, ok := child.(*MemoryNode)
	if !ok || c == nil {
		return
	}
	for i, kid := range n.Kids {
		if kid == c {
			n.Kids = append(n.Kids[:i], n.Kids[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// SetTextContent implements Node.
func (n *MemoryNode) SetTextContent(text string) {
	n.Text = text
}

// ChildNodes returns a snapshot of the node's children.
func (n *MemoryNode) ChildNodes() []Node {
	kids := make([]Node, len(n.Kids))
	for i, kid := range n.Kids {
		kids[i] = kid
	}
	return kids
}

// Parent returns the node's parent, or nil if detached.
func (n *MemoryNode) Parent() *MemoryNode {
	return n.parent
}

// Index returns the node's position among its parent's children, or -1 if
// detached.
func (n *MemoryNode) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, kid := range n.parent.Kids {
		if kid == n {
			return i
		}
	}
	return -1
}

// Attr returns the attribute value and whether it is set.
func (n *MemoryNode) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}
