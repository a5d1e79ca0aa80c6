package packet

import (
	"bytes"
	"testing"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    uint32
	}{
		{name: "nil payload", payload: nil, want: 0},
		{name: "empty payload", payload: []byte{}, want: 0},
		{name: "single byte", payload: []byte{0xFF}, want: 255},
		{name: "small sum", payload: []byte{1, 2, 3, 4, 5}, want: 15},
		{name: "zeros contribute nothing", payload: []byte{0, 0, 0, 7}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Checksum(tt.payload); got != tt.want {
				t.Errorf("Checksum(%v) = %d, want %d", tt.payload, got, tt.want)
			}
		})
	}
}

func TestChecksumIsOrderIndependent(t *testing.T) {
	a := Checksum([]byte{1, 2, 3})
	b := Checksum([]byte{3, 2, 1})
	if a != b {
		t.Errorf("Checksum([1 2 3]) = %d, Checksum([3 2 1]) = %d, want equal", a, b)
	}
	if a != 6 {
		t.Errorf("Checksum([1 2 3]) = %d, want 6", a)
	}
}

func TestChecksumWrapsModulo32Bits(t *testing.T) {
	// 16843010 bytes of 0xFF sum to 4294967550 = 2^32 + 254.
	payload := bytes.Repeat([]byte{0xFF}, 16843010)
	if got := Checksum(payload); got != 254 {
		t.Errorf("Checksum(16843010 * 0xFF) = %d, want 254", got)
	}
}

func TestVerifyChecksum(t *testing.T) {
	pkt := New(1, 2, 3, []byte{10, 20, 30})
	if !pkt.VerifyChecksum() {
		t.Error("VerifyChecksum() = false for freshly constructed packet")
	}

	// Same byte values reordered still verify: the additive checksum
	// cannot tell the difference.
	permuted := Packet{Header: pkt.Header, Payload: []byte{30, 10, 20}}
	if !permuted.VerifyChecksum() {
		t.Error("VerifyChecksum() = false for byte-permuted payload")
	}

	corrupted := Packet{Header: pkt.Header, Payload: []byte{10, 20, 31}}
	if corrupted.VerifyChecksum() {
		t.Error("VerifyChecksum() = true for altered payload")
	}
}

func BenchmarkChecksum(b *testing.B) {
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 256)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(payload)
	}
}
