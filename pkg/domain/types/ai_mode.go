package types

import "fmt"

// AIMode represents how Global AI replies participate in a conversation.
// Only the replace path is implemented; hybrid is accepted and persisted
// but currently behaves the same as replace.
type AIMode string

const (
	AIModeReplace AIMode = "replace"
	AIModeHybrid  AIMode = "hybrid"
)

// IsValid checks if the AI mode is valid
func (m AIMode) IsValid() bool {
	switch m {
	case AIModeReplace,
		AIModeHybrid:
		return true
	default:
		return false
	}
}

// Normalize returns the mode, treating empty as AIModeReplace
func (m AIMode) Normalize() AIMode {
	if m == "" {
		return AIModeReplace
	}
	return m
}

// String returns the string representation of the AI mode
func (m AIMode) String() string {
	return string(m)
}

// ParseAIMode parses a string into an AIMode
func ParseAIMode(s string) (AIMode, error) {
	mode := AIMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid AI mode: %s", s)
	}
	return mode, nil
}
