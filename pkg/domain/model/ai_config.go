package model

import "github.com/flowreach/flowreach/pkg/domain/types"

// AIConfig holds the global switches of the Global AI responder.
type AIConfig struct {
	GlobalAIEnabled bool         `json:"globalAiEnabled"`
	GlobalAIMode    types.AIMode `json:"globalAiMode"`
	MemoryEnabled   bool         `json:"memoryEnabled"`
}

// DefaultAIConfig returns the configuration used before the first save
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		GlobalAIEnabled: false,
		GlobalAIMode:    types.AIModeReplace,
		MemoryEnabled:   true,
	}
}

// Clone returns a copy of the config
func (c *AIConfig) Clone() *AIConfig {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}
