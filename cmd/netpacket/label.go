package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LuanOldCode/netpacket/internal/config"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Manage message-type labels",
	Long: `Assign human-readable names to message-type bytes. Labels live in the
local config registry and are used by decode, inspect, and browse when
rendering packets.`,
}

var labelSetCmd = &cobra.Command{
	Use:   "set <type> <name>",
	Short: "Set the label for a message type",
	Example: `  netpacket label set 1 heartbeat
  netpacket label set 0x10 telemetry`,
	Args: cobra.ExactArgs(2),
	RunE: runLabelSet,
}

var labelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all message-type labels",
	Args:  cobra.NoArgs,
	RunE:  runLabelList,
}

var labelRemoveCmd = &cobra.Command{
	Use:     "rm <type>",
	Aliases: []string{"remove"},
	Short:   "Remove the label for a message type",
	Args:    cobra.ExactArgs(1),
	RunE:    runLabelRemove,
}

func init() {
	labelCmd.AddCommand(labelSetCmd)
	labelCmd.AddCommand(labelListCmd)
	labelCmd.AddCommand(labelRemoveCmd)
	rootCmd.AddCommand(labelCmd)
}

// parseMessageType accepts decimal or 0x-prefixed hex type bytes.
func parseMessageType(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid message type %q: %w", s, err)
	}
	return uint8(v), nil
}

func runLabelSet(cmd *cobra.Command, args []string) error {
	mt, err := parseMessageType(args[0])
	if err != nil {
		return err
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	registry.SetLabel(mt, args[1])
	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("Labeled message type 0x%02x as %q\n", mt, args[1])
	return nil
}

func runLabelList(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	if len(registry.Labels) == 0 {
		fmt.Println("No labels configured.")
		return nil
	}

	types := make([]uint8, 0, len(registry.Labels))
	for mt := range registry.Labels {
		types = append(types, mt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, mt := range types {
		fmt.Printf("  0x%02x  %s\n", mt, registry.Labels[mt])
	}
	return nil
}

func runLabelRemove(cmd *cobra.Command, args []string) error {
	mt, err := parseMessageType(args[0])
	if err != nil {
		return err
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	if !registry.HasLabel(mt) {
		return fmt.Errorf("no label for message type 0x%02x", mt)
	}

	registry.DeleteLabel(mt)
	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("Removed label for message type 0x%02x\n", mt)
	return nil
}
