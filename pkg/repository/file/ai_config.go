package file

import (
	"context"
	"sync"

	"github.com/flowreach/flowreach/pkg/domain/model"
)

type aiConfigState struct {
	Config *model.AIConfig `json:"config"`
}

type aiConfigRepository struct {
	mu    sync.RWMutex
	path  string
	state aiConfigState
}

func newAIConfigRepository(ctx context.Context, path string) *aiConfigRepository {
	r := &aiConfigRepository{path: path}
	loadStore(ctx, path, &r.state)
	return r
}

func (r *aiConfigRepository) Get(ctx context.Context) (*model.AIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state.Config == nil {
		return model.DefaultAIConfig(), nil
	}
	return r.state.Config.Clone(), nil
}

func (r *aiConfigRepository) Put(ctx context.Context, config *model.AIConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := config.Clone()
	saved.GlobalAIMode = saved.GlobalAIMode.Normalize()
	r.state.Config = saved
	return saveStore(r.path, &r.state)
}
