// Package packet implements the fixed-layout binary wire format for
// point-to-point messages: a 21-byte header followed by a variable-length
// payload.
//
// # Wire Format
//
// Every packet starts with the fixed header, all multi-byte integers
// little-endian regardless of host byte order:
//
//	offset  size  field
//	0       1     message_type   (uint8, application-defined kind)
//	1       4     sequence       (uint32, monotonic counter)
//	5       8     sender_id      (uint64, opaque originator identifier)
//	13      4     payload_size   (uint32, byte length of the payload)
//	17      4     checksum       (uint32, additive checksum of the payload)
//	21      N     payload        (N = payload_size bytes)
//
// There is no magic number, version field, or framing delimiter. A transport
// layer must supply message boundaries (one packet per datagram, or
// sequential reads via ReadPacket, which uses payload_size to find the next
// boundary in a stream).
//
// # Checksum
//
// The checksum is the arithmetic sum of the payload's byte values, wrapping
// modulo 2^32. It detects many accidental corruptions but is order-independent
// and trivially forged; it is an integrity aid, not a security mechanism.
// Decode does not verify it: the field is advisory unless the caller checks
// it explicitly with VerifyChecksum. Folding verification into Decode would
// reject wire-compatible senders that never populate the field.
//
// # Usage Example - Construction
//
//	pkt := packet.New(1, 42, 12345, []byte{1, 2, 3, 4, 5})
//	wire := pkt.Encode() // 26 bytes: 21-byte header + 5-byte payload
//
// # Usage Example - Decoding
//
//	pkt, err := packet.Decode(wire)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !pkt.VerifyChecksum() {
//	    // corrupted in transit
//	}
//
// # Error Handling
//
// There are exactly two failure conditions, both returned as errors that
// match the package sentinels with errors.Is:
//   - ErrInsufficientBytes: fewer than 21 bytes where a header is expected
//   - ErrPayloadSizeMismatch: bytes after the header do not equal payload_size
//
// Decoding is all-or-nothing; no partial packet is ever returned.
//
// # Thread Safety
//
// All operations are pure functions over their inputs and safe for
// concurrent use on independent data. Packets are values: once constructed
// they are never mutated by this package.
package packet
