package memory

import (
	"context"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
)

type profileRepository struct {
	mu      sync.RWMutex
	profile *model.BusinessProfile
}

func newProfileRepository() *profileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Get(ctx context.Context) (*model.BusinessProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return &model.BusinessProfile{}, nil
	}
	return r.profile.Clone(), nil
}

func (r *profileRepository) Put(ctx context.Context, profile *model.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := profile.Clone()
	saved.UpdatedAt = time.Now().UTC()
	r.profile = saved
	return nil
}
