package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LuanOldCode/netpacket/internal/analyze"
	"github.com/LuanOldCode/netpacket/internal/packet"
)

// RenderHeaderTable renders the annotated header field table. label, when
// non-empty, is the user-assigned name for the packet's message type.
func RenderHeaderTable(h packet.Header, label string) string {
	var lines []string
	lines = append(lines, TitleStyle.Render("HEADER")+FieldOffsetStyle.Render(fmt.Sprintf("  (%d bytes)", packet.HeaderSize)))

	for _, f := range analyze.HeaderFields(h) {
		line := FieldOffsetStyle.Render(fmt.Sprintf("  [%2d +%d] ", f.Offset, f.Size)) +
			FieldNameStyle.Render(f.Name) +
			FieldValueStyle.Render(fmt.Sprintf("%-20s", f.Hex)) +
			FieldValueStyle.Render(f.Value)
		if f.Name == "message_type" && label != "" {
			line += "  " + LabelStyle.Render(label)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// RenderChecksumReport renders the declared/computed comparison with a
// pass or fail marker.
func RenderChecksumReport(r analyze.ChecksumReport) string {
	if r.Match {
		return OKStyle.Render(fmt.Sprintf("%s %s", OKMarker, r))
	}
	return BadStyle.Render(fmt.Sprintf("%s %s", BadMarker, r))
}

// RenderPayload renders the payload section: byte count plus hex dump.
func RenderPayload(payload []byte) string {
	title := TitleStyle.Render("PAYLOAD") + FieldOffsetStyle.Render(fmt.Sprintf("  (%d bytes)", len(payload)))
	return title + "\n" + DumpStyle.Render(indent(analyze.HexDump(payload), "  "))
}

// RenderSummary renders a capture summary: totals, the per-type histogram
// with labels, checksum results, and any sequence gaps.
func RenderSummary(s analyze.Summary, labelFor func(uint8) string) string {
	var lines []string
	lines = append(lines, TitleStyle.Render("CAPTURE SUMMARY"))
	lines = append(lines, fmt.Sprintf("  packets:       %d", s.Packets))
	lines = append(lines, fmt.Sprintf("  wire bytes:    %d", s.WireBytes))
	lines = append(lines, fmt.Sprintf("  payload bytes: %d", s.PayloadBytes))

	if len(s.ByType) > 0 {
		lines = append(lines, "", TitleStyle.Render("MESSAGE TYPES"))
		for _, msgType := range s.Types() {
			line := fmt.Sprintf("  0x%02x  %-6d", msgType, s.ByType[msgType])
			if labelFor != nil {
				line += LabelStyle.Render(labelFor(msgType))
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, "")
	if s.ChecksumMismatches == 0 {
		lines = append(lines, OKStyle.Render(fmt.Sprintf("%s all checksums verified", OKMarker)))
	} else {
		lines = append(lines, BadStyle.Render(fmt.Sprintf("%s %d checksum mismatch(es)", BadMarker, s.ChecksumMismatches)))
	}

	for _, gap := range s.Gaps {
		lines = append(lines, GapStyle.Render(
			fmt.Sprintf("  sequence gap: sender %d jumped %d -> %d", gap.SenderID, gap.From, gap.To)))
	}

	return strings.Join(lines, "\n")
}

// RenderBanner renders a bordered one-line banner sized to the terminal.
func RenderBanner(text string) string {
	width := GetTerminalWidth()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Padding(0, 1).
		Render(TitleStyle.Render(text))
}

func indent(s, prefix string) string {
	trimmed := strings.TrimRight(s, "\n")
	return prefix + strings.ReplaceAll(trimmed, "\n", "\n"+prefix)
}
