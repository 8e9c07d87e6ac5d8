package file

import (
	"context"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type campaignState struct {
	Campaigns []*model.Campaign `json:"campaigns"`
}

type campaignRepository struct {
	mu    sync.RWMutex
	path  string
	state campaignState
}

func newCampaignRepository(ctx context.Context, path string) *campaignRepository {
	r := &campaignRepository{path: path}
	loadStore(ctx, path, &r.state)
	return r
}

func (r *campaignRepository) indexOf(id types.CampaignID) int {
	for i, c := range r.state.Campaigns {
		if c.ID == id {
			return i
		}
	}
	return -1
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

	r.state.Campaigns = append(r.state.Campaigns, created)
	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (r *campaignRepository) Get(ctx context.Context, id types.CampaignID) (*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.state.Campaigns[i].Clone(), nil
	}
	return nil, goerr.Wrap(model.ErrNotFound, "campaign not found", goerr.V("campaignID", id))
}

func (r *campaignRepository) Update(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(campaign.ID)
	if i < 0 {
		return nil, goerr.Wrap(model.ErrNotFound, "campaign not found", goerr.V("campaignID", campaign.ID))
	}

	updated := campaign.Clone()
	updated.Status = updated.Status.Normalize()
	updated.CreatedAt = r.state.Campaigns[i].CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.state.Campaigns[i] = updated
	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

func (r *campaignRepository) Delete(ctx context.Context, id types.CampaignID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return goerr.Wrap(model.ErrNotFound, "campaign not found", goerr.V("campaignID", id))
	}
	r.state.Campaigns = append(r.state.Campaigns[:i], r.state.Campaigns[i+1:]...)
	return saveStore(r.path, &r.state)
}

func (r *campaignRepository) List(ctx context.Context) ([]*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Campaign, 0, len(r.state.Campaigns))
	for _, c := range r.state.Campaigns {
		result = append(result, c.Clone())
	}
	return result, nil
}
