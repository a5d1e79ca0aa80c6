package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LuanOldCode/netpacket/internal/analyze"
	"github.com/LuanOldCode/netpacket/internal/config"
	"github.com/LuanOldCode/netpacket/internal/logging"
	"github.com/LuanOldCode/netpacket/internal/packet"
	"github.com/LuanOldCode/netpacket/internal/tui"
	"github.com/LuanOldCode/netpacket/internal/ui"
)

// Command flags
var (
	outputFormat string
	inputHex     string
	outPath      string
	appendOut    bool
	emitHex      bool
	fullInspect  bool

	msgType  uint8
	sequence uint32
	senderID uint64
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(checksumCmd)
	rootCmd.AddCommand(browseCmd)
}

// encodeCmd builds one packet and writes its wire bytes
var encodeCmd = &cobra.Command{
	Use:   "encode [payload-file]",
	Short: "Encode a packet from a payload",
	Long: `Build a packet from header flags and a payload, then emit its wire bytes.

The payload comes from a file argument, the --hex flag, or stdin. The
payload size and checksum header fields are derived from the payload;
they cannot be set directly.`,
	Example: `  # Encode a payload file, write the packet next to it
  netpacket encode data.bin --type 1 --seq 42 --sender 12345 -o packet.bin

  # Append to a capture of concatenated packets
  netpacket encode data.bin --type 2 --seq 43 -o capture.bin --append

  # Inline payload, hex on stdout
  netpacket encode --hex "0102030405" --type 1 --seq 42 --print-hex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().Uint8Var(&msgType, "type", 0, "Message type byte")
	encodeCmd.Flags().Uint32Var(&sequence, "seq", 0, "Sequence number")
	encodeCmd.Flags().Uint64Var(&senderID, "sender", 0, "Sender identifier (defaults from config)")
	encodeCmd.Flags().StringVar(&inputHex, "hex", "", "Inline payload as a hex string")
	encodeCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (stdout when omitted)")
	encodeCmd.Flags().BoolVar(&appendOut, "append", false, "Append to the output file instead of truncating")
	encodeCmd.Flags().BoolVar(&emitHex, "print-hex", false, "Print hex instead of raw bytes")
	_ = encodeCmd.MarkFlagRequired("type")
}

func runEncode(cmd *cobra.Command, args []string) error {
	payload, err := readInput(args)
	if err != nil {
		return err
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("sender") {
		senderID = registry.Preferences.DefaultSenderID
	}

	pkt := packet.New(msgType, sequence, senderID, payload)
	logging.LogPacket("packet_encoded", pkt)

	wire := pkt.Encode()
	if emitHex {
		fmt.Println(hex.EncodeToString(wire))
		return nil
	}
	return writeOutput(wire)
}

// decodeCmd decodes exactly one packet buffer
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a single packet",
	Long: `Decode one packet from a file, the --hex flag, or stdin.

The buffer must hold exactly one packet: the 21-byte header plus the
number of payload bytes the header declares. The checksum field is
reported but never causes a decode failure; use inspect for captures
and checksum verdicts across many packets.`,
	Example: `  # Decode a packet file
  netpacket decode packet.bin

  # Decode hex from a log line, JSON output for scripting
  netpacket decode --hex "01:2a:00:00:00..." --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&inputHex, "hex", "", "Inline packet bytes as a hex string")
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	pkt, err := packet.Decode(data)
	if err != nil {
		return err
	}
	logging.LogPacket("packet_decoded", pkt)

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}
	return printPacket(pkt, registry)
}

// inspectCmd summarizes a capture of concatenated packets
var inspectCmd = &cobra.Command{
	Use:   "inspect <capture-file>",
	Short: "Inspect a capture of concatenated packets",
	Long: `Read a capture file as a sequence of back-to-back packets and report
totals, a message-type histogram, checksum verdicts, and sequence gaps
per sender. With --full, every packet is printed with its annotated
header table and payload dump.`,
	Example: `  # Capture summary
  netpacket inspect capture.bin

  # Full per-packet breakdown
  netpacket inspect capture.bin --full`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&fullInspect, "full", false, "Print every packet in full")
}

func runInspect(cmd *cobra.Command, args []string) error {
	packets, err := readCapture(args[0])
	if err != nil {
		return err
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	fmt.Println(ui.RenderBanner(fmt.Sprintf("inspect: %s", args[0])))
	fmt.Println()

	if fullInspect {
		for i, pkt := range packets {
			fmt.Printf("--- packet #%d ---\n", i)
			fmt.Println(ui.RenderHeaderTable(pkt.Header, registry.LabelFor(pkt.Header.MessageType)))
			fmt.Println(ui.RenderChecksumReport(analyze.ChecksumOf(pkt)))
			fmt.Println(ui.RenderPayload(pkt.Payload))
			fmt.Println()
		}
	}

	fmt.Println(ui.RenderSummary(analyze.Summarize(packets), registry.LabelFor))
	return nil
}

// checksumCmd computes the additive checksum of arbitrary bytes
var checksumCmd = &cobra.Command{
	Use:   "checksum [file]",
	Short: "Compute the additive checksum of input bytes",
	Long: `Compute the wire checksum of arbitrary input: the unsigned sum of all
byte values, wrapping modulo 2^32. This is the value a packet header
carries for its payload.`,
	Example: `  netpacket checksum payload.bin
  netpacket checksum --hex "0102030405"
  cat payload.bin | netpacket checksum`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChecksum,
}

func init() {
	checksumCmd.Flags().StringVar(&inputHex, "hex", "", "Inline input as a hex string")
}

func runChecksum(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	sum := packet.Checksum(data)
	fmt.Printf("%d (0x%08x) over %d byte(s)\n", sum, sum, len(data))
	return nil
}

// browseCmd launches the interactive capture browser
var browseCmd = &cobra.Command{
	Use:   "browse <capture-file>",
	Short: "Browse a capture interactively",
	Long: `Open a capture file in an interactive terminal browser: a filterable
list of packets with a detail view showing the annotated header,
checksum verdict, and payload hex dump for each.`,
	Example: `  netpacket browse capture.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	packets, err := readCapture(args[0])
	if err != nil {
		return err
	}
	if len(packets) == 0 {
		return fmt.Errorf("capture %s holds no packets", args[0])
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewBrowser(packets, registry.LabelFor), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

// --- shared input/output helpers ---

// readInput resolves the input bytes for a command: the --hex flag wins,
// then a file argument, then stdin.
func readInput(args []string) ([]byte, error) {
	if inputHex != "" {
		cleaned := strings.NewReplacer(" ", "", ":", "", "\n", "").Replace(inputHex)
		data, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// readCapture decodes a whole file of concatenated packets.
func readCapture(path string) ([]packet.Packet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	packets, err := packet.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read capture %s: %w", path, err)
	}
	return packets, nil
}

// writeOutput writes wire bytes to -o, or raw to stdout when omitted.
func writeOutput(data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendOut {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(outPath, flags, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", outPath, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// packetJSON is the --format json projection of a decoded packet.
type packetJSON struct {
	MessageType uint8  `json:"message_type"`
	Label       string `json:"label,omitempty"`
	Sequence    uint32 `json:"sequence"`
	SenderID    uint64 `json:"sender_id"`
	PayloadSize uint32 `json:"payload_size"`
	Checksum    uint32 `json:"checksum"`
	ChecksumOK  bool   `json:"checksum_ok"`
	PayloadHex  string `json:"payload_hex"`
}

// printPacket renders a decoded packet per the chosen format.
func printPacket(pkt packet.Packet, registry *config.Registry) error {
	format := outputFormat
	if format == "" {
		format = registry.Preferences.DefaultFormat
	}

	label := ""
	if registry.HasLabel(pkt.Header.MessageType) {
		label = registry.LabelFor(pkt.Header.MessageType)
	}

	switch format {
	case "compact":
		name := label
		if name == "" {
			name = fmt.Sprintf("0x%02x", pkt.Header.MessageType)
		}
		verdict := "checksum ok"
		if !pkt.VerifyChecksum() {
			verdict = "CHECKSUM MISMATCH"
		}
		fmt.Printf("%s seq=%d sender=%d payload=%dB %s\n",
			name, pkt.Header.Sequence, pkt.Header.SenderID, len(pkt.Payload), verdict)

	case "json":
		out := packetJSON{
			MessageType: pkt.Header.MessageType,
			Label:       label,
			Sequence:    pkt.Header.Sequence,
			SenderID:    pkt.Header.SenderID,
			PayloadSize: pkt.Header.PayloadSize,
			Checksum:    pkt.Header.Checksum,
			ChecksumOK:  pkt.VerifyChecksum(),
			PayloadHex:  hex.EncodeToString(pkt.Payload),
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))

	case "detailed":
		fallthrough
	default:
		fmt.Println(ui.RenderHeaderTable(pkt.Header, label))
		fmt.Println(ui.RenderChecksumReport(analyze.ChecksumOf(pkt)))
		fmt.Println(ui.RenderPayload(pkt.Payload))
	}

	return nil
}
