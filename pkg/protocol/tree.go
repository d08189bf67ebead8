package protocol

// WireNode is the wire form of a materialized tree node, used for the
// full-tree snapshot a client receives on connect. Components never appear
// on the wire; the engine has already flattened them to their output.
type WireNode struct {
	ID     uint64
	IsText bool
	Tag    string // Elements only
	Text   string // Text nodes only
	Attrs  []WireAttr
	Kids   []*WireNode
}

// WireAttr is a single attribute on a WireNode. Attrs are encoded in the
// order given; the serializer emits them sorted by key.
type WireAttr struct {
	Key   string
	Value string
}

// EncodeWireNode encodes a tree snapshot to bytes.
func EncodeWireNode(n *WireNode) []byte {
	e := NewEncoder()
	EncodeWireNodeTo(e, n)
	return e.Bytes()
}

// EncodeWireNodeTo encodes a tree snapshot using the provided encoder.
func EncodeWireNodeTo(e *Encoder, n *WireNode) {
	e.WriteUvarint(n.ID)
	e.WriteBool(n.IsText)

	if n.IsText {
		e.WriteString(n.Text)
		return
	}

	e.WriteString(n.Tag)
	e.WriteUvarint(uint64(len(n.Attrs)))
	for _, a := range n.Attrs {
		e.WriteString(a.Key)
		e.WriteString(a.Value)
	}
	e.WriteUvarint(uint64(len(n.Kids)))
	for _, kid := range n.Kids {
		EncodeWireNodeTo(e, kid)
	}
}

// DecodeWireNode decodes a tree snapshot from bytes.
func DecodeWireNode(data []byte) (*WireNode, error) {
	d := NewDecoder(data)
	return DecodeWireNodeFrom(d)
}

// DecodeWireNodeFrom decodes a tree snapshot from a decoder.
func DecodeWireNodeFrom(d *Decoder) (*WireNode, error) {
	n := &WireNode{}

	var err error
	n.ID, err = d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	n.IsText, err = d.ReadBool()
	if err != nil {
		return nil, err
	}

	if n.IsText {
		n.Text, err = d.ReadString()
		return n, err
	}

	n.Tag, err = d.ReadString()
	if err != nil {
		return nil, err
	}

	attrCount, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	if attrCount > 0 {
		n.Attrs = make([]WireAttr, attrCount)
		for i := 0; i < attrCount; i++ {
			if n.Attrs[i].Key, err = d.ReadString(); err != nil {
				return nil, err
			}
			if n.Attrs[i].Value, err = d.ReadString(); err != nil {
				return nil, err
			}
		}
	}

	kidCount, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	if kidCount > 0 {
		n.Kids = make([]*WireNode, kidCount)
		for i := 0; i < kidCount; i++ {
			if n.Kids[i], err = DecodeWireNodeFrom(d); err != nil {
				return nil, err
			}
		}
	}

	return n, nil
}
