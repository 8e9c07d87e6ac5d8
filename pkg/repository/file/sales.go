package file

import (
	"context"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type salesState struct {
	Records []*model.SalesRecord `json:"records"`
}

type salesRepository struct {
	mu    sync.RWMutex
	path  string
	state salesState
}

func newSalesRepository(ctx context.Context, path string) *salesRepository {
	r := &salesRepository{path: path}
	loadStore(ctx, path, &r.state)
	return r
}

func (r *salesRepository) indexOf(id types.SalesID) int {
	for i, rec := range r.state.Records {
		if rec.ID == id {
			return i
		}
	}
	return -1
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

	r.state.Records = append(r.state.Records, created)
	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (r *salesRepository) Get(ctx context.Context, id types.SalesID) (*model.SalesRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.state.Records[i].Clone(), nil
	}
	return nil, goerr.Wrap(model.ErrNotFound, "sales record not found", goerr.V("salesID", id))
}

func (r *salesRepository) Update(ctx context.Context, record *model.SalesRecord) (*model.SalesRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(record.ID)
	if i < 0 {
		return nil, goerr.Wrap(model.ErrNotFound, "sales record not found", goerr.V("salesID", record.ID))
	}

	updated := record.Clone()
	updated.Status = updated.Status.Normalize()
	updated.CreatedAt = r.state.Records[i].CreatedAt

	r.state.Records[i] = updated
	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

func (r *salesRepository) Delete(ctx context.Context, id types.SalesID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return goerr.Wrap(model.ErrNotFound, "sales record not found", goerr.V("salesID", id))
	}
	r.state.Records = append(r.state.Records[:i], r.state.Records[i+1:]...)
	return saveStore(r.path, &r.state)
}

func (r *salesRepository) List(ctx context.Context) ([]*model.SalesRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.SalesRecord, 0, len(r.state.Records))
	for _, rec := range r.state.Records {
		result = append(result, rec.Clone())
	}
	return result, nil
}
