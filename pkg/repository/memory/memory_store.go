package memory

import (
	"context"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[types.UserID][]*model.MemoryRecord
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		entries: make(map[types.UserID][]*model.MemoryRecord),
	}
}

func (r *memoryRepository) Append(ctx context.Context, userID types.UserID, record *model.MemoryRecord) (*model.MemoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := record.Clone()
	if created.ID == "" {
		created.ID = types.NewMemoryID()
	}
	created.CreatedAt = time.Now().UTC()

	r.entries[userID] = append(r.entries[userID], created)
	return created.Clone(), nil
}

// Recent returns the tail of the per-user log, oldest first within the
// window.
func (r *memoryRepository) Recent(ctx context.Context, userID types.UserID, limit int) ([]*model.MemoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.entries[userID]
	if limit < 0 {
		limit = 0
	}
	start := len(records) - limit
	if start < 0 {
		start = 0
	}

	result := make([]*model.MemoryRecord, 0, len(records)-start)
	for _, rec := range records[start:] {
		result = append(result, rec.Clone())
	}
	return result, nil
}
