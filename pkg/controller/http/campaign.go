package http

import (
	"net/http"

	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

type campaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func listCampaignsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		campaigns, err := uc.Campaign.List(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, campaigns)
	}
}

func createCampaignHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req campaignRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		created, err := uc.Campaign.Create(ctx, req.Name, req.Description)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, created)
	}
}

func getCampaignHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		campaign, err := uc.Campaign.Get(ctx, types.CampaignID(chi.URLParam(r, "id")))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, campaign)
	}
}

func updateCampaignHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req campaignRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		updated, err := uc.Campaign.Update(ctx, types.CampaignID(chi.URLParam(r, "id")), req.Name, req.Description)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, updated)
	}
}

func deleteCampaignHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := uc.Campaign.Delete(ctx, types.CampaignID(chi.URLParam(r, "id"))); err != nil {
			respondError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func startCampaignHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		updated, err := uc.Campaign.Start(ctx, types.CampaignID(chi.URLParam(r, "id")))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, updated)
	}
}

func stopCampaignHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		updated, err := uc.Campaign.Stop(ctx, types.CampaignID(chi.URLParam(r, "id")))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, updated)
	}
}
