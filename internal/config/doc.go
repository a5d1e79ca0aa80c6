// Package config provides user configuration management for the netpacket
// tools.
//
// This package manages a YAML-based configuration file that stores
// user-defined labels for message type bytes and application preferences.
// The wire format treats message types as opaque; labels make decode and
// inspect output readable without baking application semantics into the
// codec. The configuration follows OS-specific conventions for storage
// location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/netpacket/config.yaml or $HOME/.config/netpacket/config.yaml
//   - macOS: $HOME/.config/netpacket/config.yaml
//   - Windows: %LOCALAPPDATA%\netpacket\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.SetLabel(0x01, "handshake")
//	registry.SetLabel(0x02, "state_update")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
//	name := registry.LabelFor(pkt.Header.MessageType)
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
