package analyze

import (
	"fmt"

	"github.com/LuanOldCode/netpacket/internal/packet"
)

// Field is one annotated header field: its wire offset, width, and both
// rendered forms of the value.
type Field struct {
	Offset int
	Size   int
	Name   string
	Hex    string
	Value  string
}

// HeaderFields breaks a header into its wire fields in layout order,
// ready for table rendering.
func HeaderFields(h packet.Header) []Field {
	return []Field{
		{Offset: 0, Size: 1, Name: "message_type", Hex: fmt.Sprintf("0x%02x", h.MessageType), Value: fmt.Sprintf("%d", h.MessageType)},
		{Offset: 1, Size: 4, Name: "sequence", Hex: fmt.Sprintf("0x%08x", h.Sequence), Value: fmt.Sprintf("%d", h.Sequence)},
		{Offset: 5, Size: 8, Name: "sender_id", Hex: fmt.Sprintf("0x%016x", h.SenderID), Value: fmt.Sprintf("%d", h.SenderID)},
		{Offset: 13, Size: 4, Name: "payload_size", Hex: fmt.Sprintf("0x%08x", h.PayloadSize), Value: fmt.Sprintf("%d", h.PayloadSize)},
		{Offset: 17, Size: 4, Name: "checksum", Hex: fmt.Sprintf("0x%08x", h.Checksum), Value: fmt.Sprintf("%d", h.Checksum)},
	}
}

// ChecksumReport compares the header's declared checksum with a
// recomputation over the payload.
type ChecksumReport struct {
	Declared uint32
	Computed uint32
	Match    bool
}

// ChecksumOf builds the checksum report for a decoded packet. A mismatch
// is not an error anywhere in the codec; this is the explicit check.
func ChecksumOf(pkt packet.Packet) ChecksumReport {
	computed := packet.Checksum(pkt.Payload)
	return ChecksumReport{
		Declared: pkt.Header.Checksum,
		Computed: computed,
		Match:    computed == pkt.Header.Checksum,
	}
}

func (r ChecksumReport) String() string {
	if r.Match {
		return fmt.Sprintf("checksum 0x%08x verified", r.Declared)
	}
	return fmt.Sprintf("checksum mismatch: declared 0x%08x, computed 0x%08x", r.Declared, r.Computed)
}
