package interfaces

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

// MotherAIRepository stores Mother-AI routing configs and the active
// pointer. GetActive returns (nil, nil) when no config is active.
type MotherAIRepository interface {
	Create(ctx context.Context, config *model.MotherAIConfig) (*model.MotherAIConfig, error)
	Get(ctx context.Context, id types.MotherAIID) (*model.MotherAIConfig, error)
	Delete(ctx context.Context, id types.MotherAIID) error
	List(ctx context.Context) ([]*model.MotherAIConfig, error)

	SetActive(ctx context.Context, id types.MotherAIID) error
	ClearActive(ctx context.Context) error
	GetActive(ctx context.Context) (*model.MotherAIConfig, error)
	ActiveID(ctx context.Context) (types.MotherAIID, error)
}
