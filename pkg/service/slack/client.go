// Package slack posts outbound messages to Slack channels and resolves
// user display names for inbound conversations.
package slack

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// DefaultCacheTTL is the default TTL for the user info cache
const DefaultCacheTTL = 5 * time.Minute

// Service is the Slack messaging interface
type Service interface {
	PostMessage(ctx context.Context, channelID, text string) error
	GetUserInfo(ctx context.Context, userID string) (*User, error)
}

// cacheEntry holds a cached user with expiration
type cacheEntry struct {
	user      *User
	expiresAt time.Time
}

// client implements Service interface
type client struct {
	api      *slack.Client
	cacheTTL time.Duration

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// Option is a functional option for client configuration
type Option func(*client)

// WithCacheTTL sets the TTL for the user info cache
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *client) {
		c.cacheTTL = ttl
	}
}

// New creates a new Slack service with the provided bot token
func New(token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	c := &client{
		api:      slack.New(token),
		cacheTTL: DefaultCacheTTL,
		cache:    make(map[string]cacheEntry),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// PostMessage sends a plain text message to the given channel
func (c *client) PostMessage(ctx context.Context, channelID, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post Slack message", goerr.V("channel_id", channelID))
	}
	return nil
}

// GetUserInfo retrieves user information for the given user ID with caching
func (c *client) GetUserInfo(ctx context.Context, userID string) (*User, error) {
	now := time.Now()

	c.mu.RLock()
	entry, ok := c.cache[userID]
	c.mu.RUnlock()
	if ok && entry.expiresAt.After(now) {
		return entry.user, nil
	}

	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user info", goerr.V("user_id", userID))
	}

	resolved := &User{
		ID:       user.ID,
		Name:     user.Name,
		RealName: user.RealName,
	}

	c.mu.Lock()
	c.cache[userID] = cacheEntry{
		user:      resolved,
		expiresAt: now.Add(c.cacheTTL),
	}
	c.mu.Unlock()

	return resolved, nil
}
