package file

import (
	"context"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

type memoryState struct {
	Memories map[types.UserID][]*model.MemoryRecord `json:"memories"`
}

type memoryRepository struct {
	mu    sync.RWMutex
	path  string
	state memoryState
}

func newMemoryRepository(ctx context.Context, path string) *memoryRepository {
	r := &memoryRepository{path: path}
	loadStore(ctx, path, &r.state)
	if r.state.Memories == nil {
		r.state.Memories = make(map[types.UserID][]*model.MemoryRecord)
	}
	return r
}

func (r *memoryRepository) Append(ctx context.Context, userID types.UserID, record *model.MemoryRecord) (*model.MemoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := record.Clone()
	if created.ID == "" {
		created.ID = types.NewMemoryID()
	}
	created.CreatedAt = time.Now().UTC()

	r.state.Memories[userID] = append(r.state.Memories[userID], created)
	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (r *memoryRepository) Recent(ctx context.Context, userID types.UserID, limit int) ([]*model.MemoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.state.Memories[userID]
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
