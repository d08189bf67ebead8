package server

import (
	"sort"

	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/protocol"
)

// hostNode keeps the mutation signatures readable below.
type hostNode = host.Node

// RemoteDocument is a host document whose mutations are recorded as
// protocol patches. The reconciliation engine renders into it exactly as it
// renders into an in-memory document; after each pass the pending patches
// are flushed to the connected client, which replays them against its local
// tree.
//
// Node IDs are assigned at creation, monotonically from 1. ID 0 is
// reserved for "none".
type RemoteDocument struct {
	nextID  uint64
	pending []protocol.Patch
}

// NewRemoteDocument creates an empty remote document.
func NewRemoteDocument() *RemoteDocument {
	return &RemoteDocument{nextID: 1}
}

// NewContainer creates a root container node. Containers exist on the
// client already (they are the mount point), so no create patch is
// recorded.
func (d *RemoteDocument) NewContainer(tag string) *RemoteNode {
	return d.newNode(tag, "", false)
}

// CreateNode creates an element node and records its creation.
func (d *RemoteDocument) CreateNode(tag string) hostNode {
	n := d.newNode(tag, "", false)
	d.record(protocol.NewCreateElementPatch(n.id, tag))
	return n
}

// CreateTextNode creates a text node and records its creation.
func (d *RemoteDocument) CreateTextNode(text string) hostNode {
	n := d.newNode("", text, true)
	d.record(protocol.NewCreateTextPatch(n.id, text))
	return n
}

func (d *RemoteDocument) newNode(tag, text string, isText bool) *RemoteNode {
	n := &RemoteNode{
		doc:    d,
		id:     d.nextID,
		tag:    tag,
		text:   text,
		isText: isText,
	}
	d.nextID++
	return n
}

func (d *RemoteDocument) record(p protocol.Patch) {
	d.pending = append(d.pending, p)
}

// Flush returns the patches recorded since the last flush as a batch with
// the given sequence number, and clears the pending list.
func (d *RemoteDocument) Flush(seq uint64) *protocol.PatchBatch {
	batch := &protocol.PatchBatch{Seq: seq, Patches: d.pending}
	d.pending = nil
	return batch
}

// Pending returns the number of unflushed patches.
func (d *RemoteDocument) Pending() int {
	return len(d.pending)
}

// RemoteNode is a node in a RemoteDocument. It maintains a server-side
// mirror of the client tree so full snapshots can be produced for newly
// connected clients.
type RemoteNode struct {
	doc    *RemoteDocument
	id     uint64
	tag    string
	text   string
	isText bool
	attrs  map[string]string
	kids   []*RemoteNode
	parent *RemoteNode
}

// ID returns the node's wire ID.
func (n *RemoteNode) ID() uint64 { return n.id }

// SetAttribute sets an attribute and records the mutation.
func (n *RemoteNode) SetAttribute(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	n.doc.record(protocol.NewSetAttrPatch(n.id, key, value))
}

// RemoveAttribute removes an attribute and records the mutation.
func (n *RemoteNode) RemoveAttribute(key string) {
	delete(n.attrs, key)
	n.doc.record(protocol.NewRemoveAttrPatch(n.id, key))
}

// AppendChild appends child and records the mutation.
func (n *RemoteNode) AppendChild(child hostNode) {
	n.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref, appending when ref is nil. A
// child attached elsewhere is detached first, mirroring DOM insertBefore.
func (n *RemoteNode) InsertBefore(child, ref hostNode) {
	c := child.(*RemoteNode)
	if c.parent != nil {
		c.parent.detach(c)
	}

	var refID uint64
	idx := len(n.kids)
	if ref != nil {
		r := ref.(*RemoteNode)
		refID = r.id
		for i, kid := range n.kids {
			if kid == r {
				idx = i
				break
			}
		}
	}

	n.kids = append(n.kids, nil)
	copy(n.kids[idx+1:], n.kids[idx:])
	n.kids[idx] = c
	c.parent = n

	n.doc.record(protocol.NewInsertBeforePatch(n.id, c.id, refID))
}

// RemoveChild detaches child and records the mutation.
func (n *RemoteNode) RemoveChild(child hostNode) {
	c := child.(*RemoteNode)
	n.detach(c)
	n.doc.record(protocol.NewRemoveChildPatch(n.id, c.id))
}

// ChildNodes returns a snapshot of the node's children.
func (n *RemoteNode) ChildNodes() []hostNode {
	kids := make([]hostNode, len(n.kids))
	for i, kid := range n.kids {
		kids[i] = kid
	}
	return kids
}

func (n *RemoteNode) detach(c *RemoteNode) {
	for i, kid := range n.kids {
		if kid == c {
			n.kids = append(n.kids[:i], n.kids[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// SetTextContent replaces the node's text and records the mutation.
func (n *RemoteNode) SetTextContent(text string) {
	n.text = text
	n.doc.record(protocol.NewSetTextPatch(n.id, text))
}

// Snapshot returns the wire form of the subtree rooted at n, with
// attributes sorted by key.
func (n *RemoteNode) Snapshot() *protocol.WireNode {
	w := &protocol.WireNode{
		ID:     n.id,
		IsText: n.isText,
		Tag:    n.tag,
		Text:   n.text,
	}
	if len(n.attrs) > 0 {
		keys := make([]string, 0, len(n.attrs))
		for k := range n.attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		w.Attrs = make([]protocol.WireAttr, len(keys))
		for i, k := range keys {
			w.Attrs[i] = protocol.WireAttr{Key: k, Value: n.attrs[k]}
		}
	}
	for _, kid := range n.kids {
		w.Kids = append(w.Kids, kid.Snapshot())
	}
	return w
}
