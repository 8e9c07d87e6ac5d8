package model

import "github.com/flowreach/flowreach/pkg/domain/types"

// KBItemSourceCampaign and KBItemSourceMotherAI record where a KB item's
// fields came from.
const (
	KBItemSourceCampaign = "campaign"
	KBItemSourceMotherAI = "mother_ai"
)

// KBItem is one searchable entry of the knowledge base. Its ID is the
// ID of the campaign it was built from.
type KBItem struct {
	ID          types.CampaignID
	Name        string
	Description string
	Keywords    []string
	Sources     []string
}

// KB is the derived, in-memory knowledge base. It is recomputed
// wholesale from the profile, campaign and Mother-AI stores; it is
// never persisted. A KB value is immutable once built.
type KB struct {
	Profile BusinessProfile
	Items   []KBItem
}
