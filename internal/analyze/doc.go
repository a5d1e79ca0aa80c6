// Package analyze provides inspection utilities for wire packets: annotated
// header breakdowns, hex dumps, checksum reports, and capture summaries.
//
// Everything here returns data or plain strings; styling and presentation
// belong to the ui package and the CLI. Nothing in this package mutates a
// packet, so all functions are safe for concurrent use.
package analyze
