package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/sitekeeper/internal/domain/material"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

func testProject(id string) *project.Project {
	return &project.Project{
		ID:          id,
		Name:        "Riverside Apartments",
		Description: "Six-storey residential build",
		StartDate:   "2026-01-15",
		EndDate:     "2026-11-30",
		Status:      project.StatusActive,
		Budget:      1250000,
		Progress:    35,
		Location:    "Riverside Dr 12",
		Materials: []material.Material{
			{ID: "m1", Name: "Concrete", Quantity: 120, Unit: "m3", Cost: 18000, Supplier: "MixCo"},
		},
		CreatedAt: time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestProjectRepository_InsertGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	proj := testProject("p1")
	require.NoError(t, repo.Insert(ctx, proj))

	loaded, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, proj.ID, loaded.ID)
	require.Equal(t, proj.Name, loaded.Name)
	require.Equal(t, proj.Status, loaded.Status)
	require.Equal(t, proj.Budget, loaded.Budget)
	require.Equal(t, proj.Progress, loaded.Progress)
	require.Equal(t, proj.Materials, loaded.Materials)
	require.True(t, proj.CreatedAt.Equal(loaded.CreatedAt), "createdAt must survive the round trip")
}

func TestProjectRepository_DuplicateInsert(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Insert(ctx, testProject("p1")))

	err := repo.Insert(ctx, testProject("p1"))
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestProjectRepository_ReplacePreservesCreatedAt(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	original := testProject("p1")
	require.NoError(t, repo.Insert(ctx, original))

	updated := testProject("p1")
	updated.Name = "Riverside Apartments II"
	updated.Status = project.StatusPaused
	updated.Progress = 60
	updated.CreatedAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Replace(ctx, updated))

	loaded, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Riverside Apartments II", loaded.Name)
	require.Equal(t, project.StatusPaused, loaded.Status)
	require.Equal(t, 60, loaded.Progress)
	require.True(t, original.CreatedAt.Equal(loaded.CreatedAt), "replace must not touch createdAt")
}

func TestProjectRepository_ReplaceWithoutPrior(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	// No NotFound distinction at this layer: replace of a missing id inserts.
	require.NoError(t, repo.Replace(ctx, testProject("ghost")))

	loaded, err := repo.Get(ctx, "ghost")
	require.NoError(t, err)
	require.Equal(t, "Riverside Apartments", loaded.Name)
}

func TestProjectRepository_RemoveIdempotent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Insert(ctx, testProject("p1")))
	require.NoError(t, repo.Remove(ctx, "p1"))

	_, err := repo.Get(ctx, "p1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Second remove of the same id is a no-op, not an error.
	require.NoError(t, repo.Remove(ctx, "p1"))
}

func TestProjectRepository_ListByStatus(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	active := testProject("p1")
	paused := testProject("p2")
	paused.Status = project.StatusPaused
	require.NoError(t, repo.Insert(ctx, active))
	require.NoError(t, repo.Insert(ctx, paused))

	got, err := repo.ListByStatus(ctx, project.StatusActive)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "p1", got[0].ID)

	empty, err := repo.ListByStatus(ctx, project.StatusCompleted)
	require.NoError(t, err)
	require.Empty(t, empty)
}
