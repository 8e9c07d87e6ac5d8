package types

import "fmt"

// ChannelType represents a connected messaging platform
type ChannelType string

const (
	ChannelWhatsApp  ChannelType = "whatsapp"
	ChannelMessenger ChannelType = "messenger"
	ChannelSlack     ChannelType = "slack"
)

// AllChannelTypes returns all valid channel types
func AllChannelTypes() []ChannelType {
	return []ChannelType{
		ChannelWhatsApp,
		ChannelMessenger,
		ChannelSlack,
	}
}

// IsValid checks if the channel type is valid
func (c ChannelType) IsValid() bool {
	switch c {
	case ChannelWhatsApp,
		ChannelMessenger,
		ChannelSlack:
		return true
	default:
		return false
	}
}

// String returns the string representation of the channel type
func (c ChannelType) String() string {
	return string(c)
}

// ParseChannelType parses a string into a ChannelType
func ParseChannelType(s string) (ChannelType, error) {
	ch := ChannelType(s)
	if !ch.IsValid() {
		return "", fmt.Errorf("invalid channel type: %s", s)
	}
	return ch, nil
}
