package usecase

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/kb"
	"github.com/m-mizutani/goerr/v2"
)

// MotherAIUseCase manages Mother-AI routing configs and the active
// pointer. Activation, deletion and creation all rebuild the knowledge
// base cache since the active config enriches KB items.
type MotherAIUseCase struct {
	repo    interfaces.Repository
	kbCache *kb.Cache
}

func NewMotherAIUseCase(repo interfaces.Repository, kbCache *kb.Cache) *MotherAIUseCase {
	return &MotherAIUseCase{
		repo:    repo,
		kbCache: kbCache,
	}
}

// MotherAIElementInput is one campaign routing entry in a config
type MotherAIElementInput struct {
	CampaignID types.CampaignID
	Label      string
	Keywords   []string
}

func (uc *MotherAIUseCase) Create(ctx context.Context, name, systemPrompt string, elements []MotherAIElementInput) (*model.MotherAIConfig, error) {
	if name == "" {
		return nil, goerr.Wrap(ErrEmptyName, "mother AI config name is required")
	}

	config := &model.MotherAIConfig{
		Name:         name,
		SystemPrompt: systemPrompt,
	}
	for _, e := range elements {
		config.Elements = append(config.Elements, model.MotherAIElement{
			CampaignID: e.CampaignID,
			Label:      e.Label,
			Keywords:   e.Keywords,
		})
	}

	created, err := uc.repo.MotherAI().Create(ctx, config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create mother AI config")
	}

	uc.kbCache.Refresh(ctx)

	return created, nil
}

func (uc *MotherAIUseCase) Get(ctx context.Context, id types.MotherAIID) (*model.MotherAIConfig, error) {
	config, err := uc.repo.MotherAI().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get mother AI config", goerr.V("mother_ai_id", id))
	}
	return config, nil
}

func (uc *MotherAIUseCase) List(ctx context.Context) ([]*model.MotherAIConfig, error) {
	configs, err := uc.repo.MotherAI().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list mother AI configs")
	}
	return configs, nil
}

// ActiveID returns the active config ID, empty when none is active
func (uc *MotherAIUseCase) ActiveID(ctx context.Context) (types.MotherAIID, error) {
	id, err := uc.repo.MotherAI().ActiveID(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get active mother AI config ID")
	}
	return id, nil
}

// Activate makes the config the single active one. The config must
// exist at activation time.
func (uc *MotherAIUseCase) Activate(ctx context.Context, id types.MotherAIID) error {
	if err := uc.repo.MotherAI().SetActive(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to activate mother AI config", goerr.V("mother_ai_id", id))
	}

	uc.kbCache.Refresh(ctx)

	return nil
}

// Deactivate clears the active pointer
func (uc *MotherAIUseCase) Deactivate(ctx context.Context) error {
	if err := uc.repo.MotherAI().ClearActive(ctx); err != nil {
		return goerr.Wrap(err, "failed to deactivate mother AI config")
	}

	uc.kbCache.Refresh(ctx)

	return nil
}

// Delete removes the config. The repository clears the active pointer
// when it references the deleted config, so no dangling pointer
// survives a delete.
func (uc *MotherAIUseCase) Delete(ctx context.Context, id types.MotherAIID) error {
	if err := uc.repo.MotherAI().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete mother AI config", goerr.V("mother_ai_id", id))
	}

	uc.kbCache.Refresh(ctx)

	return nil
}
