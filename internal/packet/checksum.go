package packet

// Checksum computes the additive checksum over payload: each byte's
// unsigned value widened to 32 bits and summed, wrapping modulo 2^32 on
// overflow. The empty payload sums to 0.
//
// The result depends only on the multiset of byte values, not their order,
// so any byte-value-preserving permutation goes undetected. It is not a
// CRC and offers no collision resistance.
func Checksum(payload []byte) uint32 {
	var sum uint32
	for _, b := range payload {
		sum += uint32(b)
	}
	return sum
}

// VerifyChecksum recomputes the checksum over the payload and compares it
// to the header's declared value. Decode skips this on purpose, so legacy
// senders that never populate the field still parse; integrity checking
// is opt-in through this method.
func (p Packet) VerifyChecksum() bool {
	return Checksum(p.Payload) == p.Header.Checksum
}
