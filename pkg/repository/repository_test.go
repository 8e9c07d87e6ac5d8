package repository_test

import (
	"context"
	"testing"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/repository/file"
	"github.com/flowreach/flowreach/pkg/repository/memory"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newFileRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	repo, err := file.New(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("failed to create file repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close file repository: %v", err)
		}
	})
	return repo
}
