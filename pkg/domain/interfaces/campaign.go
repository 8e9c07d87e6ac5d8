package interfaces

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

// CampaignRepository stores campaigns
type CampaignRepository interface {
	Create(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error)
	Get(ctx context.Context, id types.CampaignID) (*model.Campaign, error)
	Update(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error)
	Delete(ctx context.Context, id types.CampaignID) error
	List(ctx context.Context) ([]*model.Campaign, error)
}
