package memory

import (
	"context"
	"sync"

	"github.com/flowreach/flowreach/pkg/domain/model"
)

type aiConfigRepository struct {
	mu     sync.RWMutex
	config *model.AIConfig
}

func newAIConfigRepository() *aiConfigRepository {
	return &aiConfigRepository{}
}

func (r *aiConfigRepository) Get(ctx context.Context) (*model.AIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.config == nil {
		return model.DefaultAIConfig(), nil
	}
	return r.config.Clone(), nil
}

func (r *aiConfigRepository) Put(ctx context.Context, config *model.AIConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := config.Clone()
	saved.GlobalAIMode = saved.GlobalAIMode.Normalize()
	r.config = saved
	return nil
}
