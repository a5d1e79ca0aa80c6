package analyze

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HexDump renders data as a classic offset / hex / ASCII dump,
// 16 bytes per line. Non-printable bytes show as '.'.
func HexDump(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	for offset := 0; offset < len(data); offset += 16 {
		end := offset + 16
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]

		fmt.Fprintf(&b, "%04x  ", offset)
		for i := 0; i < 16; i++ {
			if i < len(line) {
				fmt.Fprintf(&b, "%02x ", line[i])
			} else {
				b.WriteString("   ")
			}
			if i == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |")
		for _, c := range line {
			if c >= 32 && c <= 126 {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}

// WordDump renders data as 32-bit little-endian words, one per line, with
// any trailing bytes listed raw. Useful for spotting counters and
// identifiers that span byte boundaries.
func WordDump(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	for i := 0; i+4 <= len(data); i += 4 {
		word := binary.LittleEndian.Uint32(data[i : i+4])
		fmt.Fprintf(&b, "[%02d-%02d] 0x%08x %13d\n", i, i+3, word, word)
	}

	if rem := len(data) % 4; rem > 0 {
		start := len(data) - rem
		fmt.Fprintf(&b, "[%02d-%02d] tail:", start, len(data)-1)
		for _, c := range data[start:] {
			fmt.Fprintf(&b, " %02x", c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
