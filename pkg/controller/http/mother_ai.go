package http

import (
	"net/http"

	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

func listMotherAIHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Configs  any              `json:"configs"`
		ActiveID types.MotherAIID `json:"activeMotherAIId,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		configs, err := uc.MotherAI.List(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		activeID, err := uc.MotherAI.ActiveID(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, response{
			Configs:  configs,
			ActiveID: activeID,
		})
	}
}

func createMotherAIHandler(uc *usecase.UseCases) http.HandlerFunc {
	type elementRequest struct {
		CampaignID string   `json:"campaignId"`
		Label      string   `json:"label"`
		Keywords   []string `json:"keywords"`
	}
	type request struct {
		Name         string           `json:"name"`
		SystemPrompt string           `json:"systemPrompt"`
		Elements     []elementRequest `json:"elements"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		elements := make([]usecase.MotherAIElementInput, len(req.Elements))
		for i, e := range req.Elements {
			elements[i] = usecase.MotherAIElementInput{
				CampaignID: types.CampaignID(e.CampaignID),
				Label:      e.Label,
				Keywords:   e.Keywords,
			}
		}

		created, err := uc.MotherAI.Create(ctx, req.Name, req.SystemPrompt, elements)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, created)
	}
}

func activateMotherAIHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := uc.MotherAI.Activate(ctx, types.MotherAIID(chi.URLParam(r, "id"))); err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, map[string]bool{"active": true})
	}
}

func deleteMotherAIHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := uc.MotherAI.Delete(ctx, types.MotherAIID(chi.URLParam(r, "id"))); err != nil {
			respondError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
