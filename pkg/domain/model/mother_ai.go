package model

import (
	"time"

	"github.com/flowreach/flowreach/pkg/domain/types"
)

// MotherAIElement maps keyword hints to a campaign. CampaignID is a
// weak reference: a dangling ID is skipped during KB build, never an
// error.
type MotherAIElement struct {
	ID         types.ElementID  `json:"id"`
	CampaignID types.CampaignID `json:"campaignId"`
	Label      string           `json:"label"`
	Keywords   []string         `json:"keywords"`
}

// MotherAIConfig is a named routing configuration that enriches KB
// items with keywords. At most one config is active at a time.
type MotherAIConfig struct {
	ID           types.MotherAIID  `json:"id"`
	Name         string            `json:"name"`
	SystemPrompt string            `json:"systemPrompt"`
	Elements     []MotherAIElement `json:"elements"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Clone returns a deep copy of the config
func (c *MotherAIConfig) Clone() *MotherAIConfig {
	if c == nil {
		return nil
	}
	copied := *c
	copied.Elements = make([]MotherAIElement, len(c.Elements))
	for i, e := range c.Elements {
		copied.Elements[i] = e
		copied.Elements[i].Keywords = append([]string(nil), e.Keywords...)
	}
	return &copied
}
