package config_test

import (
	"testing"

	"github.com/flowreach/flowreach/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestRepository_Configure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory", "")
		repo, err := cfg.Configure(t.Context())
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("file backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("file", t.TempDir())
		repo, err := cfg.Configure(t.Context())
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("dynamo", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})
}
