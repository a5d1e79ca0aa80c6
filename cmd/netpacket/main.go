// Netpacket is a workbench for a fixed-layout binary packet format.
//
// It encodes, decodes, and inspects point-to-point wire packets: a 21-byte
// little-endian header (message type, sequence, sender id, payload size,
// additive checksum) followed by a raw payload. Captures of concatenated
// packets can be summarized or browsed interactively.
//
// Usage:
//
//	netpacket [command] [flags]
//
// See 'netpacket --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LuanOldCode/netpacket/internal/logging"
	"github.com/LuanOldCode/netpacket/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "netpacket",
	Short: "Binary packet codec workbench",
	Long: `A workbench for a fixed-layout binary packet wire format.

Encode packets from raw payloads, decode and verify captured bytes,
summarize captures of concatenated packets, and browse them interactively.
The wire format is a 21-byte little-endian header followed by the payload;
there is no framing, so captures are sequences of back-to-back packets.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("netpacket %s (commit: %s)\n", version.Version, version.Commit)
	},
}
