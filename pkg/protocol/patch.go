package protocol

// PatchOp is the type of patch operation. The operations mirror the host
// mutation surface one to one, so a client can replay a batch against its
// local tree without interpretation.
type PatchOp uint8

const (
	OpCreateElement PatchOp = 0x01 // Create a new element node
	OpCreateText    PatchOp = 0x02 // Create a new text node
	OpSetAttr       PatchOp = 0x03 // Set attribute
	OpRemoveAttr    PatchOp = 0x04 // Remove attribute
	OpInsertBefore  PatchOp = 0x05 // Insert child before a reference node
	OpRemoveChild   PatchOp = 0x06 // Detach child from parent
	OpSetText       PatchOp = 0x07 // Replace text content
)

// String returns the string representation of the patch operation.
func (op PatchOp) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpInsertBefore:
		return "InsertBefore"
	case OpRemoveChild:
		return "RemoveChild"
	case OpSetText:
		return "SetText"
	default:
		return "Unknown"
	}
}

// Patch represents a single tree operation. Nodes are addressed by the
// numeric IDs assigned at creation; ID 0 is reserved for "none" (an
// InsertBefore with Ref 0 appends).
type Patch struct {
	Op     PatchOp
	Target uint64 // Node the operation applies to
	Parent uint64 // Parent for InsertBefore/RemoveChild
	Ref    uint64 // Reference sibling for InsertBefore, 0 appends
	Key    string // Attribute key
	Value  string // Attribute value, text content, or element tag
}

// PatchBatch is one reconciliation pass worth of patches with a sequence
// number for ordering on the client.
type PatchBatch struct {
	Seq     uint64
	Patches []Patch
}

// NewCreateElementPatch creates a CreateElement patch.
func NewCreateElementPatch(id uint64, tag string) Patch {
	return Patch{Op: OpCreateElement, Target: id, Value: tag}
}

// NewCreateTextPatch creates a CreateText patch.
func NewCreateTextPatch(id uint64, text string) Patch {
	return Patch{Op: OpCreateText, Target: id, Value: text}
}

// NewSetAttrPatch creates a SetAttr patch.
func NewSetAttrPatch(id uint64, key, value string) Patch {
	return Patch{Op: OpSetAttr, Target: id, Key: key, Value: value}
}

// NewRemoveAttrPatch creates a RemoveAttr patch.
func NewRemoveAttrPatch(id uint64, key string) Patch {
	return Patch{Op: OpRemoveAttr, Target: id, Key: key}
}

// NewInsertBeforePatch creates an InsertBefore patch. ref 0 appends.
func NewInsertBeforePatch(parent, child, ref uint64) Patch {
	return Patch{Op: OpInsertBefore, Target: child, Parent: parent, Ref: ref}
}

// NewRemoveChildPatch creates a RemoveChild patch.
func NewRemoveChildPatch(parent, child uint64) Patch {
	return Patch{Op: OpRemoveChild, Target: child, Parent: parent}
}

// NewSetTextPatch creates a SetText patch.
func NewSetTextPatch(id uint64, text string) Patch {
	return Patch{Op: OpSetText, Target: id, Value: text}
}

// EncodePatchBatch encodes a patch batch to bytes.
func EncodePatchBatch(pb *PatchBatch) []byte {
	e := NewEncoder()
	EncodePatchBatchTo(e, pb)
	return e.Bytes()
}

// EncodePatchBatchTo encodes a patch batch using the provided encoder.
func EncodePatchBatchTo(e *Encoder, pb *PatchBatch) {
	e.WriteUvarint(pb.Seq)
	e.WriteUvarint(uint64(len(pb.Patches)))
	for i := range pb.Patches {
		encodePatch(e, &pb.Patches[i])
	}
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteUvarint(p.Target)

	switch p.Op {
	case OpCreateElement, OpCreateText, OpSetText:
		e.WriteString(p.Value)

	case OpSetAttr:
		e.WriteString(p.Key)
		e.WriteString(p.Value)

	case OpRemoveAttr:
		e.WriteString(p.Key)

	case OpInsertBefore:
		e.WriteUvarint(p.Parent)
		e.WriteUvarint(p.Ref)

	case OpRemoveChild:
		e.WriteUvarint(p.Parent)
	}
}

// DecodePatchBatch decodes a patch batch from bytes.
func DecodePatchBatch(data []byte) (*PatchBatch, error) {
	d := NewDecoder(data)
	return DecodePatchBatchFrom(d)
}

// DecodePatchBatchFrom decodes a patch batch from a decoder.
func DecodePatchBatchFrom(d *Decoder) (*PatchBatch, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}

	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	patches := make([]Patch, count)
	for i := 0; i < count; i++ {
		if err := decodePatch(d, &patches[i]); err != nil {
			return nil, err
		}
	}

	return &PatchBatch{Seq: seq, Patches: patches}, nil
}

func decodePatch(d *Decoder, p *Patch) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = PatchOp(opByte)

	p.Target, err = d.ReadUvarint()
	if err != nil {
		return err
	}

	switch p.Op {
	case OpCreateElement, OpCreateText, OpSetText:
		p.Value, err = d.ReadString()

	case OpSetAttr:
		p.Key, err = d.ReadString()
		if err != nil {
			return err
		}
		p.Value, err = d.ReadString()

	case OpRemoveAttr:
		p.Key, err = d.ReadString()

	case OpInsertBefore:
		p.Parent, err = d.ReadUvarint()
		if err != nil {
			return err
		}
		p.Ref, err = d.ReadUvarint()

	case OpRemoveChild:
		p.Parent, err = d.ReadUvarint()

	default:
		return errMalformed("unknown patch op")
	}

	return err
}
