// Package kb builds and searches the in-memory knowledge base that
// grounds Global AI replies.
package kb

import (
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

// Build derives the knowledge base from the profile, the campaign
// collection and the active Mother-AI config (nil when none is
// active). It is a pure function: no side effects, identical inputs
// produce identical output. It never fails; malformed inputs degrade
// to a best-effort partial index.
func Build(profile *model.BusinessProfile, campaigns []*model.Campaign, active *model.MotherAIConfig) *model.KB {
	kb := &model.KB{}
	if profile != nil {
		kb.Profile = *profile
	}

	index := make(map[types.CampaignID]int, len(campaigns))
	for _, c := range campaigns {
		if c == nil || c.ID == "" {
			continue
		}
		index[c.ID] = len(kb.Items)
		kb.Items = append(kb.Items, model.KBItem{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Sources:     []string{model.KBItemSourceCampaign},
		})
	}

	if active == nil {
		return kb
	}

	for _, elem := range active.Elements {
		// Dangling campaign references are skipped, not errors
		i, ok := index[elem.CampaignID]
		if !ok {
			continue
		}
		item := &kb.Items[i]
		item.Keywords = append(item.Keywords, elem.Keywords...)
		item.Sources = append(item.Sources, model.KBItemSourceMotherAI)
		if item.Name == "" && elem.Label != "" {
			item.Name = elem.Label
		}
	}

	return kb
}
