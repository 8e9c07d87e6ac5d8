package file

import (
	"context"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type motherAIState struct {
	Configs  []*model.MotherAIConfig `json:"motherAIs"`
	ActiveID types.MotherAIID        `json:"activeMotherAIId,omitempty"`
}

type motherAIRepository struct {
	mu    sync.RWMutex
	path  string
	state motherAIState
}

func newMotherAIRepository(ctx context.Context, path string) *motherAIRepository {
	r := &motherAIRepository{path: path}
	loadStore(ctx, path, &r.state)
	return r
}

func (r *motherAIRepository) indexOf(id types.MotherAIID) int {
	for i, c := range r.state.Configs {
		if c.ID == id {
			return i
		}
	}
	return -1
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

	r.state.Configs = append(r.state.Configs, created)
	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (r *motherAIRepository) Get(ctx context.Context, id types.MotherAIID) (*model.MotherAIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.state.Configs[i].Clone(), nil
	}
	return nil, goerr.Wrap(model.ErrNotFound, "mother-ai config not found", goerr.V("motherAIID", id))
}

// Delete removes the config and clears the active pointer when it
// referenced the deleted config.
func (r *motherAIRepository) Delete(ctx context.Context, id types.MotherAIID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return goerr.Wrap(model.ErrNotFound, "mother-ai config not found", goerr.V("motherAIID", id))
	}
	r.state.Configs = append(r.state.Configs[:i], r.state.Configs[i+1:]...)
	if r.state.ActiveID == id {
		r.state.ActiveID = ""
	}
	return saveStore(r.path, &r.state)
}

func (r *motherAIRepository) List(ctx context.Context) ([]*model.MotherAIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.MotherAIConfig, 0, len(r.state.Configs))
	for _, c := range r.state.Configs {
		result = append(result, c.Clone())
	}
	return result, nil
}

func (r *motherAIRepository) SetActive(ctx context.Context, id types.MotherAIID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(id) < 0 {
		return goerr.Wrap(model.ErrNotFound, "mother-ai config not found", goerr.V("motherAIID", id))
	}
	r.state.ActiveID = id
	return saveStore(r.path, &r.state)
}

func (r *motherAIRepository) ClearActive(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.ActiveID = ""
	return saveStore(r.path, &r.state)
}

func (r *motherAIRepository) GetActive(ctx context.Context) (*model.MotherAIConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state.ActiveID == "" {
		return nil, nil
	}
	if i := r.indexOf(r.state.ActiveID); i >= 0 {
		return r.state.Configs[i].Clone(), nil
	}
	return nil, nil
}

func (r *motherAIRepository) ActiveID(ctx context.Context) (types.MotherAIID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.state.ActiveID, nil
}
