package interfaces

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/model"
)

// AIConfigRepository stores the global AI switches.
// Get returns the default config when nothing has been saved.
type AIConfigRepository interface {
	Get(ctx context.Context) (*model.AIConfig, error)
	Put(ctx context.Context, config *model.AIConfig) error
}
