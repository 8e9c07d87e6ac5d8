package http

import (
	"net/http"

	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

func getProfileHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		profile, err := uc.Profile.Get(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, profile)
	}
}

// updateProfileHandler serves the onboarding submission. Accepts both
// the onboarding field names and the plain profile field names.
func updateProfileHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Name         string `json:"name"`
		BusinessName string `json:"businessName"`
		About        string `json:"about"`
		Description  string `json:"businessDescription"`
		Tone         string `json:"tone"`
		OwnerName    string `json:"userName"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		input := usecase.ProfileInput{
			Name:      req.Name,
			About:     req.About,
			Tone:      req.Tone,
			OwnerName: req.OwnerName,
		}
		if input.Name == "" {
			input.Name = req.BusinessName
		}
		if input.About == "" {
			input.About = req.Description
		}

		profile, err := uc.Profile.Update(ctx, input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, profile)
	}
}
