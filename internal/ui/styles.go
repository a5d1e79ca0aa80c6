package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for inspect output
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - verified checksums
	ErrorColor   = lipgloss.Color("#FF5555") // Red - mismatches, errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - sequence gaps
	MutedColor   = lipgloss.Color("#626262") // Gray - offsets, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for packet rendering
var (
	// TitleStyle is for section titles (e.g., "HEADER", "PAYLOAD")
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// FieldNameStyle is for header field names (e.g., "sequence")
	FieldNameStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Width(14)

	// FieldOffsetStyle is for field offsets and widths
	FieldOffsetStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// FieldValueStyle is for field values
	FieldValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// LabelStyle is for user-assigned message type labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Italic(true)

	// OKStyle is for verified checksums and clean summaries
	OKStyle = lipgloss.NewStyle().
		Foreground(SuccessColor).
		Bold(true)

	// BadStyle is for checksum mismatches and truncation notes
	BadStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// GapStyle is for sequence gap warnings
	GapStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// DumpStyle is for hex dump blocks
	DumpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Status markers
const (
	OKMarker  = "✓"
	BadMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
