package interfaces

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

// SalesRepository stores sales records
type SalesRepository interface {
	Create(ctx context.Context, record *model.SalesRecord) (*model.SalesRecord, error)
	Get(ctx context.Context, id types.SalesID) (*model.SalesRecord, error)
	Update(ctx context.Context, record *model.SalesRecord) (*model.SalesRecord, error)
	Delete(ctx context.Context, id types.SalesID) error
	List(ctx context.Context) ([]*model.SalesRecord, error)
}
