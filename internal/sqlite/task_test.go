package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/sitekeeper/internal/domain/material"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

func testTask(id, projectID string) *task.Task {
	return &task.Task{
		ID:          id,
		ProjectID:   projectID,
		Title:       "Pour foundation",
		Description: "Section A slab",
		AssignedTo:  []string{"w1", "w2"},
		Status:      task.StatusPending,
		Priority:    task.PriorityHigh,
		DueDate:     "2026-03-20",
		Progress:    10,
		Materials: []material.Material{
			{ID: "m1", Name: "Rebar", Quantity: 400, Unit: "kg", Cost: 900, Supplier: "SteelCo"},
		},
		CreatedAt: time.Date(2026, 2, 1, 7, 15, 0, 0, time.UTC),
	}
}

func TestTaskRepository_InsertGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	tk := testTask("t1", "p1")
	require.NoError(t, repo.Insert(ctx, tk))

	loaded, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, tk.Title, loaded.Title)
	require.Equal(t, tk.AssignedTo, loaded.AssignedTo)
	require.Equal(t, tk.Materials, loaded.Materials)
	require.Equal(t, tk.Priority, loaded.Priority)
	require.True(t, tk.CreatedAt.Equal(loaded.CreatedAt))
}

func TestTaskRepository_DuplicateInsert(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	require.NoError(t, repo.Insert(ctx, testTask("t1", "p1")))
	require.ErrorIs(t, repo.Insert(ctx, testTask("t1", "p1")), repository.ErrDuplicateKey)
}

func TestTaskRepository_ReplacePreservesCreatedAt(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	original := testTask("t1", "p1")
	require.NoError(t, repo.Insert(ctx, original))

	updated := testTask("t1", "p1")
	updated.Status = task.StatusCompleted
	updated.Progress = 100
	updated.CreatedAt = time.Date(2032, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Replace(ctx, updated))

	loaded, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, task.StatusCompleted, loaded.Status)
	require.Equal(t, 100, loaded.Progress)
	require.True(t, original.CreatedAt.Equal(loaded.CreatedAt))
}

func TestTaskRepository_RemoveAndNotFound(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	require.NoError(t, repo.Insert(ctx, testTask("t1", "p1")))
	require.NoError(t, repo.Remove(ctx, "t1"))

	_, err := repo.Get(ctx, "t1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepository_ListByProject(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	require.NoError(t, repo.Insert(ctx, testTask("t1", "p1")))
	require.NoError(t, repo.Insert(ctx, testTask("t2", "p1")))
	require.NoError(t, repo.Insert(ctx, testTask("t3", "p2")))

	got, err := repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// An id nothing references is an empty result, not an error.
	none, err := repo.ListByProject(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestTaskRepository_ListByStatus(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	pending := testTask("t1", "p1")
	done := testTask("t2", "p1")
	done.Status = task.StatusCompleted
	require.NoError(t, repo.Insert(ctx, pending))
	require.NoError(t, repo.Insert(ctx, done))

	got, err := repo.ListByStatus(ctx, task.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "t2", got[0].ID)
}
