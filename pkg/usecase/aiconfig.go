package usecase

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// AIConfigUseCase exposes the global AI switches. The "hybrid" mode is
// persisted but does not branch any behavior yet; only the replace
// path is implemented.
type AIConfigUseCase struct {
	repo interfaces.Repository
}

func NewAIConfigUseCase(repo interfaces.Repository) *AIConfigUseCase {
	return &AIConfigUseCase{repo: repo}
}

func (uc *AIConfigUseCase) Get(ctx context.Context) (*model.AIConfig, error) {
	cfg, err := uc.repo.AIConfig().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get AI config")
	}
	return cfg, nil
}

func (uc *AIConfigUseCase) Update(ctx context.Context, cfg *model.AIConfig) (*model.AIConfig, error) {
	if cfg.GlobalAIMode != "" && !cfg.GlobalAIMode.IsValid() {
		return nil, goerr.New("invalid AI mode", goerr.V("mode", cfg.GlobalAIMode))
	}
	cfg.GlobalAIMode = cfg.GlobalAIMode.Normalize()

	if err := uc.repo.AIConfig().Put(ctx, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to save AI config")
	}
	return cfg, nil
}
