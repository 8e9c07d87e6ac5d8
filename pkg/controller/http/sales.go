package http

import (
	"net/http"

	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

type salesRequest struct {
	Customer string `json:"customer"`
	Item     string `json:"item"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (req salesRequest) toInput() usecase.SalesInput {
	return usecase.SalesInput{
		Customer: req.Customer,
		Item:     req.Item,
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   types.SalesStatus(req.Status),
	}
}

func listSalesHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		records, err := uc.Sales.List(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, records)
	}
}

func createSalesHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req salesRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		created, err := uc.Sales.Create(ctx, req.toInput())
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, created)
	}
}

func updateSalesHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req salesRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		updated, err := uc.Sales.Update(ctx, types.SalesID(chi.URLParam(r, "id")), req.toInput())
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, updated)
	}
}

func deleteSalesHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := uc.Sales.Delete(ctx, types.SalesID(chi.URLParam(r, "id"))); err != nil {
			respondError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func salesSummaryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		summary, err := uc.Sales.Summary(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, summary)
	}
}

func analyticsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		summary, err := uc.Analytics.Summary(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, summary)
	}
}
