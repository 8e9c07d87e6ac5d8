package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type salesRepository struct {
	mu      sync.RWMutex
	records map[types.SalesID]*model.SalesRecord
}

func newSalesRepository() *salesRepository {
	return &salesRepository{
		records: make(map[types.SalesID]*model.SalesRecord),
	}
}

func (r *salesRepository) Create(ctx context.Context, record *model.SalesRecord) (*model.SalesRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := record.Clone()
	if created.ID == "" {
		created.ID = types.NewSalesID()
	}
	created.Status = created.Status.Normalize()
	created.CreatedAt = time.Now().UTC()

	r.records[created.ID] = created
	return created.Clone(), nil
}

func (r *salesRepository) Get(ctx context.Context, id types.SalesID) (*model.SalesRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "sales record not found", goerr.V("salesID", id))
	}
	return record.Clone(), nil
}

func (r *salesRepository) Update(ctx context.Context, record *model.SalesRecord) (*model.SalesRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.records[record.ID]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "sales record not found", goerr.V("salesID", record.ID))
	}

	updated := record.Clone()
	updated.Status = updated.Status.Normalize()
	updated.CreatedAt = current.CreatedAt

	r.records[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *salesRepository) Delete(ctx context.Context, id types.SalesID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return goerr.Wrap(model.ErrNotFound, "sales record not found", goerr.V("salesID", id))
	}
	delete(r.records, id)
	return nil
}

func (r *salesRepository) List(ctx context.Context) ([]*model.SalesRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.SalesRecord, 0, len(r.records))
	for _, rec := range r.records {
		result = append(result, rec.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}
