package analyze

import (
	"sort"

	"github.com/LuanOldCode/netpacket/internal/packet"
)

// SequenceGap records a jump in a sender's sequence counter between two
// adjacent packets of a capture. The counter is expected to be monotonic
// per sender; gaps usually mean dropped or reordered packets upstream.
type SequenceGap struct {
	SenderID uint64
	From     uint32 // Sequence of the previous packet from this sender
	To       uint32 // Sequence observed next
}

// Summary aggregates a capture of decoded packets.
type Summary struct {
	Packets            int
	PayloadBytes       uint64
	WireBytes          uint64 // Headers plus payloads
	ByType             map[uint8]int
	ChecksumMismatches int
	Gaps               []SequenceGap
}

// Summarize walks a capture in order and tallies counts, byte totals,
// per-type histogram, checksum mismatches, and sequence gaps per sender.
func Summarize(packets []packet.Packet) Summary {
	s := Summary{ByType: make(map[uint8]int)}
	lastSeq := make(map[uint64]uint32)

	for _, pkt := range packets {
		s.Packets++
		s.PayloadBytes += uint64(len(pkt.Payload))
		s.WireBytes += packet.HeaderSize + uint64(len(pkt.Payload))
		s.ByType[pkt.Header.MessageType]++

		if !pkt.VerifyChecksum() {
			s.ChecksumMismatches++
		}

		sender := pkt.Header.SenderID
		if prev, seen := lastSeq[sender]; seen && pkt.Header.Sequence != prev+1 {
			s.Gaps = append(s.Gaps, SequenceGap{SenderID: sender, From: prev, To: pkt.Header.Sequence})
		}
		lastSeq[sender] = pkt.Header.Sequence
	}
	return s
}

// Types returns the message types seen, ascending, for stable rendering.
func (s Summary) Types() []uint8 {
	types := make([]uint8, 0, len(s.ByType))
	for t := range s.ByType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
