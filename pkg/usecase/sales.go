package usecase

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SalesUseCase manages sales records and the sales summary
type SalesUseCase struct {
	repo interfaces.Repository
}

func NewSalesUseCase(repo interfaces.Repository) *SalesUseCase {
	return &SalesUseCase{repo: repo}
}

// SalesInput is the create/update payload for a sales record
type SalesInput struct {
	Customer string
	Item     string
	Amount   int64
	Currency string
	Status   types.SalesStatus
}

func (uc *SalesUseCase) Create(ctx context.Context, input SalesInput) (*model.SalesRecord, error) {
	if input.Customer == "" {
		return nil, goerr.Wrap(ErrEmptyName, "customer name is required")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, goerr.New("invalid sales status", goerr.V("status", input.Status))
	}

	created, err := uc.repo.Sales().Create(ctx, &model.SalesRecord{
		Customer: input.Customer,
		Item:     input.Item,
		Amount:   input.Amount,
		Currency: input.Currency,
		Status:   input.Status,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sales record")
	}
	return created, nil
}

func (uc *SalesUseCase) List(ctx context.Context) ([]*model.SalesRecord, error) {
	records, err := uc.repo.Sales().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sales records")
	}
	return records, nil
}

func (uc *SalesUseCase) Update(ctx context.Context, id types.SalesID, input SalesInput) (*model.SalesRecord, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, goerr.New("invalid sales status", goerr.V("status", input.Status))
	}

	existing, err := uc.repo.Sales().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get sales record", goerr.V("sales_id", id))
	}

	if input.Customer != "" {
		existing.Customer = input.Customer
	}
	if input.Item != "" {
		existing.Item = input.Item
	}
	if input.Amount != 0 {
		existing.Amount = input.Amount
	}
	if input.Currency != "" {
		existing.Currency = input.Currency
	}
	if input.Status != "" {
		existing.Status = input.Status
	}

	updated, err := uc.repo.Sales().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update sales record", goerr.V("sales_id", id))
	}
	return updated, nil
}

func (uc *SalesUseCase) Delete(ctx context.Context, id types.SalesID) error {
	if err := uc.repo.Sales().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete sales record", goerr.V("sales_id", id))
	}
	return nil
}

// SalesSummary aggregates sales records by status
type SalesSummary struct {
	TotalCount    int            `json:"totalCount"`
	TotalAmount   int64          `json:"totalAmount"`
	CountByStatus map[string]int `json:"countByStatus"`
	PaidAmount    int64          `json:"paidAmount"`
	PendingAmount int64          `json:"pendingAmount"`
}

// Summary computes totals over all sales records. Cancelled records
// count toward TotalCount but not toward any amount total.
func (uc *SalesUseCase) Summary(ctx context.Context) (*SalesSummary, error) {
	records, err := uc.repo.Sales().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sales records")
	}

	summary := &SalesSummary{
		CountByStatus: make(map[string]int),
	}

	for _, r := range records {
		summary.TotalCount++
		status := r.Status.Normalize()
		summary.CountByStatus[status.String()]++

		switch status {
		case types.SalesStatusPaid:
			summary.PaidAmount += r.Amount
			summary.TotalAmount += r.Amount
		case types.SalesStatusPending:
			summary.PendingAmount += r.Amount
			summary.TotalAmount += r.Amount
		}
	}

	return summary, nil
}
