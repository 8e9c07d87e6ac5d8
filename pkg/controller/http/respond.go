package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/service/reply"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/flowreach/flowreach/pkg/utils/errutil"
	"github.com/flowreach/flowreach/pkg/utils/logging"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err)
	}
}

// respondError maps use case errors onto HTTP statuses. Unknown errors
// become a 500 and are reported through errutil.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrEmptyText),
		errors.Is(err, usecase.ErrEmptyUserID),
		errors.Is(err, usecase.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, reply.ErrNotConfigured),
		errors.Is(err, usecase.ErrChannelNotConfigured):
		status = http.StatusServiceUnavailable
	}

	errutil.HandleHTTP(ctx, w, err, status)
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func badRequest(ctx context.Context, w http.ResponseWriter, err error) {
	errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
}
