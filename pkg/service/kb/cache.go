package kb

import (
	"context"
	"sync"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/utils/logging"
)

// Cache holds the current knowledge base. Refresh rebuilds it
// wholesale from the repository and swaps the reference, so readers
// always see either the previous or the fully rebuilt KB, never a
// partial one. Callers must invoke Refresh after every mutation of the
// profile, campaign or Mother-AI stores.
type Cache struct {
	repo interfaces.Repository

	mu sync.RWMutex
	kb *model.KB
}

// NewCache creates an empty cache. Call Refresh before first use to
// load the stores; until then Current returns an empty KB.
func NewCache(repo interfaces.Repository) *Cache {
	return &Cache{
		repo: repo,
		kb:   &model.KB{},
	}
}

// Refresh rebuilds the KB from the repository. Read failures degrade
// to empty inputs with a logged warning so a broken store never takes
// the responder down.
func (c *Cache) Refresh(ctx context.Context) {
	logger := logging.From(ctx)

	profile, err := c.repo.Profile().Get(ctx)
	if err != nil {
		logger.Warn("failed to load profile for KB rebuild", "error", err)
		profile = &model.BusinessProfile{}
	}

	campaigns, err := c.repo.Campaign().List(ctx)
	if err != nil {
		logger.Warn("failed to load campaigns for KB rebuild", "error", err)
		campaigns = nil
	}

	active, err := c.repo.MotherAI().GetActive(ctx)
	if err != nil {
		logger.Warn("failed to load active mother-ai config for KB rebuild", "error", err)
		active = nil
	}

	rebuilt := Build(profile, campaigns, active)

	c.mu.Lock()
	c.kb = rebuilt
	c.mu.Unlock()
}

// Current returns the latest built KB. The returned value is shared
// and must not be mutated.
func (c *Cache) Current() *model.KB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kb
}
