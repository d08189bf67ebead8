package protocol

// ControlType identifies a control message inside a FrameControl payload.
type ControlType uint8

const (
	ControlPing ControlType = 0x01
	ControlPong ControlType = 0x02
)

// Control is a ping/pong control message. Seq echoes back unchanged so a
// peer can match pongs to pings.
type Control struct {
	Type ControlType
	Seq  uint64
}

// EncodeControl encodes a control message to bytes.
func EncodeControl(c *Control) []byte {
	e := NewEncoder()
	e.WriteByte(byte(c.Type))
	e.WriteUvarint(c.Seq)
	return e.Bytes()
}

// DecodeControl decodes a control message from bytes.
func DecodeControl(data []byte) (*Control, error) {
	d := NewDecoder(data)

	t, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	return &Control{Type: ControlType(t), Seq: seq}, nil
}
