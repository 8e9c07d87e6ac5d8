package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type campaignRepository struct {
	mu        sync.RWMutex
	campaigns map[types.CampaignID]*model.Campaign
}

func newCampaignRepository() *campaignRepository {
	return &campaignRepository{
		campaigns: make(map[types.CampaignID]*model.Campaign),
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := campaign.Clone()
	if created.ID == "" {
		created.ID = types.NewCampaignID()
	}
	created.Status = created.Status.Normalize()
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.campaigns[created.ID] = created
	return created.Clone(), nil
}

func (r *campaignRepository) Get(ctx context.Context, id types.CampaignID) (*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaign, exists := r.campaigns[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "campaign not found", goerr.V("campaignID", id))
	}
	return campaign.Clone(), nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.campaigns[campaign.ID]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "campaign not found", goerr.V("campaignID", campaign.ID))
	}

	updated := campaign.Clone()
	updated.Status = updated.Status.Normalize()
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.campaigns[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *campaignRepository) Delete(ctx context.Context, id types.CampaignID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[id]; !exists {
		return goerr.Wrap(model.ErrNotFound, "campaign not found", goerr.V("campaignID", id))
	}
	delete(r.campaigns, id)
	return nil
}

func (r *campaignRepository) List(ctx context.Context) ([]*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		result = append(result, c.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}
