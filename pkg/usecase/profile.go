package usecase

import (
	"context"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/service/kb"
	"github.com/m-mizutani/goerr/v2"
)

// ProfileUseCase manages the business profile singleton. Onboarding
// submissions land here.
type ProfileUseCase struct {
	repo    interfaces.Repository
	kbCache *kb.Cache
}

func NewProfileUseCase(repo interfaces.Repository, kbCache *kb.Cache) *ProfileUseCase {
	return &ProfileUseCase{
		repo:    repo,
		kbCache: kbCache,
	}
}

// ProfileInput is the onboarding / profile update payload
type ProfileInput struct {
	Name      string
	About     string
	Tone      string
	OwnerName string
}

func (uc *ProfileUseCase) Get(ctx context.Context) (*model.BusinessProfile, error) {
	profile, err := uc.repo.Profile().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get business profile")
	}
	return profile, nil
}

// Update upserts the business profile and rebuilds the knowledge base
func (uc *ProfileUseCase) Update(ctx context.Context, input ProfileInput) (*model.BusinessProfile, error) {
	if input.Name == "" {
		return nil, goerr.Wrap(ErrEmptyName, "business name is required")
	}

	profile := &model.BusinessProfile{
		Name:      input.Name,
		About:     input.About,
		Tone:      input.Tone,
		OwnerName: input.OwnerName,
		UpdatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Profile().Put(ctx, profile); err != nil {
		return nil, goerr.Wrap(err, "failed to save business profile")
	}

	uc.kbCache.Refresh(ctx)

	return profile, nil
}
