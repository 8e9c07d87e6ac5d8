package interfaces

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

// MemoryRepository stores the per-user interaction log.
// Recent returns the last `limit` records, oldest first within the
// window.
type MemoryRepository interface {
	Append(ctx context.Context, userID types.UserID, record *model.MemoryRecord) (*model.MemoryRecord, error)
	Recent(ctx context.Context, userID types.UserID, limit int) ([]*model.MemoryRecord, error)
}
