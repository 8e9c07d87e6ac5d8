package http

import (
	"errors"
	"net/http"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/reply"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/flowreach/flowreach/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// replyHandler serves POST /api/ai/reply. Unlike the other endpoints
// it always answers with a {success, ...} envelope so UI clients can
// show the failure reason inline.
func replyHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Text           string `json:"text"`
		UserID         string `json:"userId"`
		ConversationID string `json:"conversationId"`
	}
	type response struct {
		Success bool               `json:"success"`
		Reply   string             `json:"reply,omitempty"`
		Sources []types.CampaignID `json:"sources,omitempty"`
		Error   string             `json:"error,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			respondJSON(ctx, w, http.StatusBadRequest, response{Success: false, Error: "invalid request body"})
			return
		}
		if req.Text == "" || req.UserID == "" {
			respondJSON(ctx, w, http.StatusBadRequest, response{Success: false, Error: "text and userId are required"})
			return
		}

		out, err := uc.Assistant.Answer(ctx, usecase.AnswerInput{
			Text:           req.Text,
			UserID:         types.UserID(req.UserID),
			ConversationID: types.ConversationID(req.ConversationID),
		})
		if err != nil {
			status := http.StatusInternalServerError
			message := "failed to generate reply"
			if errors.Is(err, reply.ErrNotConfigured) {
				status = http.StatusServiceUnavailable
				message = "AI service is not configured"
			}
			errutil.Handle(ctx, goerr.Wrap(err, "reply request failed"), "reply request failed")
			respondJSON(ctx, w, status, response{Success: false, Error: message})
			return
		}

		respondJSON(ctx, w, http.StatusOK, response{
			Success: true,
			Reply:   out.Reply,
			Sources: out.Sources,
		})
	}
}

func getAIConfigHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cfg, err := uc.AIConfig.Get(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, cfg)
	}
}

func updateAIConfigHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var cfg model.AIConfig
		if err := decodeJSON(r, &cfg); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		updated, err := uc.AIConfig.Update(ctx, &cfg)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, updated)
	}
}
