package file

import (
	"context"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
)

type profileState struct {
	Profile *model.BusinessProfile `json:"profile"`
}

type profileRepository struct {
	mu    sync.RWMutex
	path  string
	state profileState
}

func newProfileRepository(ctx context.Context, path string) *profileRepository {
	r := &profileRepository{path: path}
	loadStore(ctx, path, &r.state)
	return r
}

func (r *profileRepository) Get(ctx context.Context) (*model.BusinessProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state.Profile == nil {
		return &model.BusinessProfile{}, nil
	}
	return r.state.Profile.Clone(), nil
}

func (r *profileRepository) Put(ctx context.Context, profile *model.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := profile.Clone()
	saved.UpdatedAt = time.Now().UTC()
	r.state.Profile = saved
	return saveStore(r.path, &r.state)
}
