// Package ui provides styled terminal rendering for the netpacket CLI.
//
// It turns the data structures produced by the analyze package into
// lipgloss-styled output: header field tables, checksum reports, payload
// dumps, and capture summaries. These components follow a "render once and
// exit" pattern; the interactive capture browser lives in the tui package.
//
// Rendering adapts to terminal width via golang.org/x/term, falling back
// to a conservative minimum when stdout is not a terminal.
package ui
