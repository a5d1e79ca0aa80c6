package packet

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed header size:
// MessageType(1) + Sequence(4) + SenderID(8) + PayloadSize(4) + Checksum(4).
const HeaderSize = 21

// Header is the fixed 21-byte prefix of every packet. PayloadSize and
// Checksum describe the payload that follows; New establishes both
// invariants at construction time and Decode re-verifies the length.
type Header struct {
	MessageType uint8  // Application-defined message kind
	Sequence    uint32 // Monotonic counter
	SenderID    uint64 // Opaque identifier of the message originator
	PayloadSize uint32 // Byte length of the payload that follows
	Checksum    uint32 // Additive checksum over the payload bytes
}

// Encode serializes the header into exactly HeaderSize bytes, each
// multi-byte integer written least-significant-byte first. No padding,
// no alignment. This operation cannot fail.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	buf[0] = h.MessageType
	binary.LittleEndian.PutUint32(buf[1:5], h.Sequence)
	binary.LittleEndian.PutUint64(buf[5:13], h.SenderID)
	binary.LittleEndian.PutUint32(buf[13:17], h.PayloadSize)
	binary.LittleEndian.PutUint32(buf[17:21], h.Checksum)
	return buf
}

// DecodeHeader reads a header from the first HeaderSize bytes of data.
// Any trailing bytes are ignored here; they belong to the payload and are
// handled by Decode. No field combination is rejected based on value, only
// on total length: the single failure mode is ErrInsufficientBytes when
// data is shorter than HeaderSize.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes (need %d)", ErrInsufficientBytes, len(data), HeaderSize)
	}

	return Header{
		MessageType: data[0],
		Sequence:    binary.LittleEndian.Uint32(data[1:5]),
		SenderID:    binary.LittleEndian.Uint64(data[5:13]),
		PayloadSize: binary.LittleEndian.Uint32(data[13:17]),
		Checksum:    binary.LittleEndian.Uint32(data[17:21]),
	}, nil
}

// String returns a human-readable representation of the header.
func (h Header) String() string {
	return fmt.Sprintf("Header{type=0x%02x, seq=%d, sender=%d, payload_size=%d, checksum=0x%08x}",
		h.MessageType, h.Sequence, h.SenderID, h.PayloadSize, h.Checksum)
}
