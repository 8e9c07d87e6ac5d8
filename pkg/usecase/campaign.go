package usecase

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/kb"
	"github.com/m-mizutani/goerr/v2"
)

// CampaignUseCase manages campaign CRUD and lifecycle. Every mutation
// rebuilds the knowledge base cache.
type CampaignUseCase struct {
	repo    interfaces.Repository
	kbCache *kb.Cache
}

func NewCampaignUseCase(repo interfaces.Repository, kbCache *kb.Cache) *CampaignUseCase {
	return &CampaignUseCase{
		repo:    repo,
		kbCache: kbCache,
	}
}

func (uc *CampaignUseCase) Create(ctx context.Context, name, description string) (*model.Campaign, error) {
	if name == "" {
		return nil, goerr.Wrap(ErrEmptyName, "campaign name is required")
	}

	created, err := uc.repo.Campaign().Create(ctx, &model.Campaign{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create campaign")
	}

	uc.kbCache.Refresh(ctx)

	return created, nil
}

func (uc *CampaignUseCase) Get(ctx context.Context, id types.CampaignID) (*model.Campaign, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get campaign", goerr.V("campaign_id", id))
	}
	return campaign, nil
}

func (uc *CampaignUseCase) List(ctx context.Context) ([]*model.Campaign, error) {
	campaigns, err := uc.repo.Campaign().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list campaigns")
	}
	return campaigns, nil
}

func (uc *CampaignUseCase) Update(ctx context.Context, id types.CampaignID, name, description string) (*model.Campaign, error) {
	if name == "" {
		return nil, goerr.Wrap(ErrEmptyName, "campaign name is required")
	}

	existing, err := uc.repo.Campaign().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get campaign", goerr.V("campaign_id", id))
	}

	existing.Name = name
	existing.Description = description

	updated, err := uc.repo.Campaign().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update campaign", goerr.V("campaign_id", id))
	}

	uc.kbCache.Refresh(ctx)

	return updated, nil
}

func (uc *CampaignUseCase) Delete(ctx context.Context, id types.CampaignID) error {
	if err := uc.repo.Campaign().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete campaign", goerr.V("campaign_id", id))
	}

	uc.kbCache.Refresh(ctx)

	return nil
}

// Start marks the campaign active
func (uc *CampaignUseCase) Start(ctx context.Context, id types.CampaignID) (*model.Campaign, error) {
	return uc.setStatus(ctx, id, types.CampaignStatusActive)
}

// Stop marks the campaign paused
func (uc *CampaignUseCase) Stop(ctx context.Context, id types.CampaignID) (*model.Campaign, error) {
	return uc.setStatus(ctx, id, types.CampaignStatusPaused)
}

func (uc *CampaignUseCase) setStatus(ctx context.Context, id types.CampaignID, status types.CampaignStatus) (*model.Campaign, error) {
	existing, err := uc.repo.Campaign().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get campaign", goerr.V("campaign_id", id))
	}

	existing.Status = status

	updated, err := uc.repo.Campaign().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update campaign status", goerr.V("campaign_id", id), goerr.V("status", status))
	}

	uc.kbCache.Refresh(ctx)

	return updated, nil
}
