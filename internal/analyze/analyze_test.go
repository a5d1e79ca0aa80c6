package analyze

import (
	"strings"
	"testing"

	"github.com/LuanOldCode/netpacket/internal/packet"
)

func TestHeaderFields(t *testing.T) {
	h := packet.Header{
		MessageType: 0x2A,
		Sequence:    42,
		SenderID:    12345,
		PayloadSize: 5,
		Checksum:    15,
	}

	fields := HeaderFields(h)
	if len(fields) != 5 {
		t.Fatalf("got %d fields, want 5", len(fields))
	}

	// Offsets and widths must follow the wire layout exactly.
	wantLayout := []struct {
		name   string
		offset int
		size   int
	}{
		{"message_type", 0, 1},
		{"sequence", 1, 4},
		{"sender_id", 5, 8},
		{"payload_size", 13, 4},
		{"checksum", 17, 4},
	}
	for i, want := range wantLayout {
		if fields[i].Name != want.name || fields[i].Offset != want.offset || fields[i].Size != want.size {
			t.Errorf("field %d = {%s %d %d}, want {%s %d %d}",
				i, fields[i].Name, fields[i].Offset, fields[i].Size, want.name, want.offset, want.size)
		}
	}

	if fields[0].Hex != "0x2a" {
		t.Errorf("message_type hex = %q, want %q", fields[0].Hex, "0x2a")
	}
	if fields[1].Value != "42" {
		t.Errorf("sequence value = %q, want %q", fields[1].Value, "42")
	}
}

func TestChecksumOf(t *testing.T) {
	good := packet.New(1, 1, 1, []byte{1, 2, 3})
	report := ChecksumOf(good)
	if !report.Match {
		t.Errorf("report = %+v, want match", report)
	}
	if !strings.Contains(report.String(), "verified") {
		t.Errorf("String() = %q, want verified wording", report.String())
	}

	bad := good
	bad.Header.Checksum = 0xBAD
	report = ChecksumOf(bad)
	if report.Match {
		t.Errorf("report = %+v, want mismatch", report)
	}
	if report.Computed != 6 {
		t.Errorf("computed = %d, want 6", report.Computed)
	}
	if !strings.Contains(report.String(), "mismatch") {
		t.Errorf("String() = %q, want mismatch wording", report.String())
	}
}

func TestHexDump(t *testing.T) {
	dump := HexDump([]byte("Hello, packet inspector!"))

	if !strings.Contains(dump, "0000  ") {
		t.Error("dump should start with offset 0000")
	}
	if !strings.Contains(dump, "48 65 6c 6c 6f") {
		t.Errorf("dump missing hex bytes:\n%s", dump)
	}
	if !strings.Contains(dump, "|Hello, packet in") {
		t.Errorf("dump missing ASCII column:\n%s", dump)
	}
	if lines := strings.Count(dump, "\n"); lines != 2 {
		t.Errorf("24-byte dump has %d lines, want 2", lines)
	}
}

func TestHexDumpNonPrintable(t *testing.T) {
	dump := HexDump([]byte{0x00, 0x1F, 0x7F, 'A'})
	if !strings.Contains(dump, "|...A|") {
		t.Errorf("non-printables should render as dots:\n%s", dump)
	}
}

func TestHexDumpEmpty(t *testing.T) {
	if got := HexDump(nil); got != "(empty)" {
		t.Errorf("HexDump(nil) = %q, want %q", got, "(empty)")
	}
}

func TestWordDump(t *testing.T) {
	// 0x04030201 then tail bytes 05 06.
	dump := WordDump([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	if !strings.Contains(dump, "0x04030201") {
		t.Errorf("dump missing little-endian word:\n%s", dump)
	}
	if !strings.Contains(dump, "tail: 05 06") {
		t.Errorf("dump missing tail bytes:\n%s", dump)
	}
}

func TestSummarize(t *testing.T) {
	capture := []packet.Packet{
		packet.New(1, 1, 100, []byte("aa")),
		packet.New(1, 2, 100, []byte("bb")),
		packet.New(2, 5, 100, nil), // gap: 2 -> 5
		packet.New(1, 1, 200, []byte("cc")),
	}
	// Corrupt one checksum field after construction.
	capture[1].Header.Checksum++

	s := Summarize(capture)

	if s.Packets != 4 {
		t.Errorf("packets = %d, want 4", s.Packets)
	}
	if s.PayloadBytes != 6 {
		t.Errorf("payload bytes = %d, want 6", s.PayloadBytes)
	}
	if s.WireBytes != 4*packet.HeaderSize+6 {
		t.Errorf("wire bytes = %d, want %d", s.WireBytes, 4*packet.HeaderSize+6)
	}
	if s.ByType[1] != 3 || s.ByType[2] != 1 {
		t.Errorf("type histogram = %v", s.ByType)
	}
	if s.ChecksumMismatches != 1 {
		t.Errorf("checksum mismatches = %d, want 1", s.ChecksumMismatches)
	}
	if len(s.Gaps) != 1 {
		t.Fatalf("gaps = %v, want exactly one", s.Gaps)
	}
	if g := s.Gaps[0]; g.SenderID != 100 || g.From != 2 || g.To != 5 {
		t.Errorf("gap = %+v, want {100 2 5}", g)
	}

	types := s.Types()
	if len(types) != 2 || types[0] != 1 || types[1] != 2 {
		t.Errorf("Types() = %v, want [1 2]", types)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Packets != 0 || len(s.Gaps) != 0 || s.ChecksumMismatches != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}
