package packet

import "fmt"

// Packet pairs a Header with its payload. It has no identity beyond the
// two; treat it as an immutable value consumed by serialization or
// application logic.
type Packet struct {
	Header  Header
	Payload []byte
}

// New builds a packet from raw inputs, deriving PayloadSize from the
// payload's byte length and Checksum from its contents. Always succeeds
// for payload lengths representable in 32 bits; payloads at or above
// 4 GiB are out of scope.
func New(messageType uint8, sequence uint32, senderID uint64, payload []byte) Packet {
	return Packet{
		Header: Header{
			MessageType: messageType,
			Sequence:    sequence,
			SenderID:    senderID,
			PayloadSize: uint32(len(payload)),
			Checksum:    Checksum(payload),
		},
		Payload: payload,
	}
}

// Encode serializes the packet: the HeaderSize header bytes immediately
// followed by the raw payload, total length HeaderSize + payload_size.
// Deterministic, no failure path.
func (p Packet) Encode() []byte {
	buf := make([]byte, HeaderSize+len(p.Payload))
	copy(buf, p.Header.Encode())
	copy(buf[HeaderSize:], p.Payload)
	return buf
}

// Decode reconstructs a packet from a byte buffer holding exactly one
// packet. It fails with ErrInsufficientBytes when data is shorter than
// HeaderSize, and with ErrPayloadSizeMismatch when the bytes remaining
// after the header do not exactly equal the header's payload_size field
// (guarding against truncated or over-padded buffers, and against a
// header that lies about payload length).
//
// The checksum is NOT recomputed here; callers that want integrity
// checking use VerifyChecksum on the result. No partial packet is ever
// returned on failure.
func Decode(data []byte) (Packet, error) {
	if len(data) < HeaderSize {
		return Packet{}, fmt.Errorf("%w: %d bytes (need at least %d)", ErrInsufficientBytes, len(data), HeaderSize)
	}

	header, err := DecodeHeader(data)
	if err != nil {
		return Packet{}, err
	}

	remaining := data[HeaderSize:]
	if uint64(len(remaining)) != uint64(header.PayloadSize) {
		return Packet{}, fmt.Errorf("%w: header declares %d bytes, buffer has %d",
			ErrPayloadSizeMismatch, header.PayloadSize, len(remaining))
	}

	pkt := Packet{Header: header}
	if len(remaining) > 0 {
		pkt.Payload = make([]byte, len(remaining))
		copy(pkt.Payload, remaining)
	}
	return pkt, nil
}

// String returns a human-readable representation of the packet.
func (p Packet) String() string {
	return fmt.Sprintf("Packet{%s, payload=%d bytes}", p.Header, len(p.Payload))
}
