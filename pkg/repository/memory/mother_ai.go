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

type motherAIRepository struct {
	mu       sync.RWMutex
	configs  map[types.MotherAIID]*model.MotherAIConfig
	activeID types.MotherAIID
}

func newMotherAIRepository() *motherAIRepository {
	return &motherAIRepository{
		configs: make(map[types.MotherAIID]*model.MotherAIConfig),
	}
}

func (r *motherAIRepository) Create(ctx context.Context, config *model.MotherAIConfig) (*model.MotherAIConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := config.Clone()
	if created.ID == "" {
		created.ID = types.NewMotherAIID()
	}
	for i := range created.Elements {
		if created.Elements[i].ID == "" {
			created.Elements[i].ID = types.NewElementID()
		}
	}
	created.CreatedAt = time.Now().UTC()

	r.configs[created.ID] = created
	return created.Clone(), nil
}

func (r *motherAIRepository) Get(ctx context.Context, id types.MotherAIID) (*model.MotherAIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, exists := r.configs[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "mother-ai config not found", goerr.V("motherAIID", id))
	}
	return config.Clone(), nil
}

// Delete removes the config. When the deleted config is the active one,
// the active pointer is cleared so it never dangles.
func (r *motherAIRepository) Delete(ctx context.Context, id types.MotherAIID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[id]; !exists {
		return goerr.Wrap(model.ErrNotFound, "mother-ai config not found", goerr.V("motherAIID", id))
	}
	delete(r.configs, id)
	if r.activeID == id {
		r.activeID = ""
	}
	return nil
}

func (r *motherAIRepository) List(ctx context.Context) ([]*model.MotherAIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.MotherAIConfig, 0, len(r.configs))
	for _, c := range r.configs {
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

func (r *motherAIRepository) SetActive(ctx context.Context, id types.MotherAIID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[id]; !exists {
		return goerr.Wrap(model.ErrNotFound, "mother-ai config not found", goerr.V("motherAIID", id))
	}
	r.activeID = id
	return nil
}

func (r *motherAIRepository) ClearActive(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activeID = ""
	return nil
}

func (r *motherAIRepository) GetActive(ctx context.Context) (*model.MotherAIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.activeID == "" {
		return nil, nil
	}
	config, exists := r.configs[r.activeID]
	if !exists {
		return nil, nil
	}
	return config.Clone(), nil
}

func (r *motherAIRepository) ActiveID(ctx context.Context) (types.MotherAIID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.activeID, nil
}
