package model_test

import (
	"testing"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestMotherAIConfig_Clone(t *testing.T) {
	original := &model.MotherAIConfig{
		ID:   types.NewMotherAIID(),
		Name: "routing",
		Elements: []model.MotherAIElement{
			{
				ID:         types.NewElementID(),
				CampaignID: "c1",
				Label:      "Pricing",
				Keywords:   []string{"price", "cost"},
			},
		},
	}

	cloned := original.Clone()
	cloned.Elements[0].Keywords[0] = "changed"
	cloned.Elements[0].Label = "Other"

	gt.Value(t, original.Elements[0].Keywords[0]).Equal("price")
	gt.Value(t, original.Elements[0].Label).Equal("Pricing")
}

func TestMemoryRecord_Clone(t *testing.T) {
	original := &model.MemoryRecord{
		ID:    types.NewMemoryID(),
		Title: "asked about pricing",
		Type:  "conversation",
		Data:  map[string]any{"conversationId": "wa_100"},
	}

	cloned := original.Clone()
	cloned.Data["conversationId"] = "wa_200"

	gt.Value(t, original.Data["conversationId"]).Equal("wa_100")
}
