// Package file provides a repository backed by flat JSON files, one
// file per store under a data directory. Every mutation rewrites the
// store file through a temp file and an atomic rename, so a crash
// mid-write never truncates a store. A missing or unreadable file
// degrades to an empty store with a logged warning.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Repository is a flat-file implementation of interfaces.Repository
type Repository struct {
	dir          string
	profile      *profileRepository
	campaign     *campaignRepository
	motherAI     *motherAIRepository
	memory       *memoryRepository
	conversation *conversationRepository
	sales        *salesRepository
	aiConfig     *aiConfigRepository
}

var _ interfaces.Repository = (*Repository)(nil)

// New creates a file repository rooted at dir, loading any existing
// store files.
func New(ctx context.Context, dir string) (*Repository, error) {
	if dir == "" {
		return nil, goerr.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create data directory", goerr.V("dir", dir))
	}

	return &Repository{
		dir:          dir,
		profile:      newProfileRepository(ctx, filepath.Join(dir, "profile.json")),
		campaign:     newCampaignRepository(ctx, filepath.Join(dir, "campaigns.json")),
		motherAI:     newMotherAIRepository(ctx, filepath.Join(dir, "mother_ai.json")),
		memory:       newMemoryRepository(ctx, filepath.Join(dir, "memory.json")),
		conversation: newConversationRepository(ctx, filepath.Join(dir, "conversations.json")),
		sales:        newSalesRepository(ctx, filepath.Join(dir, "sales.json")),
		aiConfig:     newAIConfigRepository(ctx, filepath.Join(dir, "ai_config.json")),
	}, nil
}

func (r *Repository) Profile() interfaces.ProfileRepository {
	return r.profile
}

func (r *Repository) Campaign() interfaces.CampaignRepository {
	return r.campaign
}

func (r *Repository) MotherAI() interfaces.MotherAIRepository {
	return r.motherAI
}

func (r *Repository) Memory() interfaces.MemoryRepository {
	return r.memory
}

func (r *Repository) Conversation() interfaces.ConversationRepository {
	return r.conversation
}

func (r *Repository) Sales() interfaces.SalesRepository {
	return r.sales
}

func (r *Repository) AIConfig() interfaces.AIConfigRepository {
	return r.aiConfig
}

// Close is a no-op; every mutation is flushed synchronously
func (r *Repository) Close() error {
	return nil
}

// loadStore reads a store file into v. A missing or empty file is not
// an error. Decode failures are logged and the store starts empty.
func loadStore(ctx context.Context, path string, v any) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !os.IsNotExist(err) {
			logging.From(ctx).Warn("failed to read store file, starting empty",
				"path", path, "error", err)
		}
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		logging.From(ctx).Warn("failed to decode store file, starting empty",
			"path", path, "error", err)
	}
}

// saveStore writes v to path via a temp file and an atomic rename
func saveStore(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode store", goerr.V("path", path))
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp store file", goerr.V("path", path))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to write temp store file", goerr.V("path", tmpPath))
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to sync temp store file", goerr.V("path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to close temp store file", goerr.V("path", tmpPath))
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to replace store file", goerr.V("path", path))
	}
	return nil
}
