package http

import (
	"net/http"

	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

func listConversationsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		conversations, err := uc.Conversation.List(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, conversations)
	}
}

func listMessagesHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		messages, err := uc.Conversation.Messages(ctx, types.ConversationID(chi.URLParam(r, "id")))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, messages)
	}
}

func sendMessageHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Text string `json:"text"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		msg, err := uc.Conversation.SendManual(ctx, types.ConversationID(chi.URLParam(r, "id")), req.Text)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, msg)
	}
}

func setAIModeHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Enabled bool `json:"enabled"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			badRequest(ctx, w, goerr.Wrap(err, "invalid request body"))
			return
		}

		if err := uc.Conversation.SetAIMode(ctx, types.ConversationID(chi.URLParam(r, "id")), req.Enabled); err != nil {
			respondError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, map[string]bool{"aiEnabled": req.Enabled})
	}
}
