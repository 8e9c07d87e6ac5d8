package interfaces

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/model"
)

// ProfileRepository stores the singleton business profile.
// Get returns an empty profile (never nil) when nothing has been saved.
type ProfileRepository interface {
	Get(ctx context.Context) (*model.BusinessProfile, error)
	Put(ctx context.Context, profile *model.BusinessProfile) error
}
