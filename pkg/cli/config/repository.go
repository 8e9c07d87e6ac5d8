package config

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/repository/file"
	"github.com/flowreach/flowreach/pkg/repository/memory"
	"github.com/flowreach/flowreach/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
	dataDir string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (file or memory)",
			Value:       "file",
			Sources:     cli.EnvVars("FLOWREACH_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory for JSON store files (file backend)",
			Value:       "./data",
			Sources:     cli.EnvVars("FLOWREACH_DATA_DIR"),
			Destination: &r.dataDir,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "file":
		repo, err := file.New(ctx, r.dataDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize file repository")
		}
		logging.Default().Info("Using file repository", "data_dir", r.dataDir)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
