// Package tui implements the interactive capture browser for the netpacket
// CLI.
//
// The browser is a Bubble Tea program over an already-decoded capture:
// a filterable list of packets (type, sequence, sender, checksum status)
// and a scrollable detail view with the annotated header table, checksum
// report, and payload hex dump. All decoding happens before the program
// starts; the browser itself never touches the wire format.
//
// # Screens
//
//   - List: one entry per packet in capture order, / to filter
//   - Detail: full breakdown of the selected packet, esc to return
package tui
