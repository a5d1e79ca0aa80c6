package config

import "fmt"

// Registry represents the entire user configuration file.
// It stores message-type labels and application preferences.
type Registry struct {
	Version     int              `yaml:"version"`
	Labels      map[uint8]string `yaml:"labels,omitempty"` // Keyed by message type byte
	Preferences *Preferences     `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultSenderID uint64 `yaml:"default_sender_id"` // Sender ID used by encode when --sender is omitted
	DefaultFormat   string `yaml:"default_format"`    // Output format: detailed, compact, or json
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Labels:  make(map[uint8]string),
		Preferences: &Preferences{
			DefaultFormat: "detailed",
		},
	}
}

// LabelFor returns the user-defined label for a message type, or a
// hex placeholder when none is set. Message types are application-defined,
// so the registry is the only source of names.
func (r *Registry) LabelFor(msgType uint8) string {
	if label, ok := r.Labels[msgType]; ok {
		return label
	}
	return fmt.Sprintf("unknown(0x%02x)", msgType)
}

// HasLabel reports whether a label is set for the message type.
func (r *Registry) HasLabel(msgType uint8) bool {
	_, ok := r.Labels[msgType]
	return ok
}

// SetLabel sets or replaces the label for a message type.
func (r *Registry) SetLabel(msgType uint8, label string) {
	if r.Labels == nil {
		r.Labels = make(map[uint8]string)
	}
	r.Labels[msgType] = label
}

// DeleteLabel removes the label for a message type, if present.
func (r *Registry) DeleteLabel(msgType uint8) {
	delete(r.Labels, msgType)
}
