package model

import (
	"time"

	"github.com/flowreach/flowreach/pkg/domain/types"
)

// Campaign is a product or promotion the business runs. Campaigns are
// the primary source for knowledge base items.
type Campaign struct {
	ID          types.CampaignID     `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      types.CampaignStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// Clone returns a deep copy of the campaign
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}
