package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Validation errors
	ErrEmptyText   = errors.New("text is required")
	ErrEmptyUserID = errors.New("user id is required")
	ErrEmptyName   = errors.New("name is required")

	// Channel errors
	ErrChannelNotConfigured = errors.New("outbound channel is not configured")
)
