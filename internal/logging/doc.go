// Package logging provides structured logging for the netpacket tools.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the CLI. Output is silent by default so the tools
// stay pipe-friendly; set NETPACKET_LOG_LEVEL to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (hex dumps, codec internals)
//   - Info: Normal operations (packets encoded/decoded, files written)
//   - Warn: Non-fatal issues (checksum mismatches, sequence gaps)
//   - Error: Fatal issues (unreadable input, write failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Packet decoded",
//	    zap.Uint8("message_type", pkt.Header.MessageType),
//	    zap.Uint32("sequence", pkt.Header.Sequence),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogPacket("packet_encoded", pkt)
//	logging.LogRawBytes("wire bytes", data)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Logs go to stderr in console format so they never mix with binary or
// structured data the commands emit on stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
