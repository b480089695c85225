package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

func testRecord(id, workerID, projectID, date string) *attendance.Record {
	return &attendance.Record{
		ID:          id,
		WorkerID:    workerID,
		ProjectID:   projectID,
		TaskID:      "t1",
		Date:        date,
		CheckIn:     "08:00",
		CheckOut:    "16:30",
		HoursWorked: 8.5,
		Notes:       "overtime on slab",
		CreatedAt:   time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC),
	}
}

func TestAttendanceRepository_InsertGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	rec := testRecord("a1", "w1", "p1", "2026-03-01")
	require.NoError(t, repo.Insert(ctx, rec))

	loaded, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, rec.WorkerID, loaded.WorkerID)
	require.Equal(t, rec.Date, loaded.Date)
	require.Equal(t, rec.CheckIn, loaded.CheckIn)
	require.Equal(t, rec.CheckOut, loaded.CheckOut)
	require.Equal(t, rec.HoursWorked, loaded.HoursWorked)
	require.True(t, rec.CreatedAt.Equal(loaded.CreatedAt))
}

func TestAttendanceRepository_DuplicateInsert(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	require.NoError(t, repo.Insert(ctx, testRecord("a1", "w1", "p1", "2026-03-01")))
	err := repo.Insert(ctx, testRecord("a1", "w2", "p2", "2026-03-02"))
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestAttendanceRepository_ReplacePreservesCreatedAt(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	original := testRecord("a1", "w1", "p1", "2026-03-01")
	require.NoError(t, repo.Insert(ctx, original))

	updated := testRecord("a1", "w1", "p1", "2026-03-01")
	updated.HoursWorked = 9
	updated.Notes = "corrected"
	updated.CreatedAt = time.Date(2033, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Replace(ctx, updated))

	loaded, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, 9.0, loaded.HoursWorked)
	require.Equal(t, "corrected", loaded.Notes)
	require.True(t, original.CreatedAt.Equal(loaded.CreatedAt))
}

func TestAttendanceRepository_RemoveAndNotFound(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	require.NoError(t, repo.Insert(ctx, testRecord("a1", "w1", "p1", "2026-03-01")))
	require.NoError(t, repo.Remove(ctx, "a1"))

	_, err := repo.Get(ctx, "a1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttendanceRepository_IndexLookups(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	require.NoError(t, repo.Insert(ctx, testRecord("a1", "w1", "p1", "2026-03-01")))
	require.NoError(t, repo.Insert(ctx, testRecord("a2", "w1", "p2", "2026-03-02")))
	require.NoError(t, repo.Insert(ctx, testRecord("a3", "w2", "p1", "2026-03-01")))

	byWorker, err := repo.ListByWorker(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, byWorker, 2)

	byProject, err := repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byProject, 2)

	byDate, err := repo.ListByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	require.Equal(t, "a2", byDate[0].ID)

	none, err := repo.ListByDate(ctx, "2027-01-01")
	require.NoError(t, err)
	require.Empty(t, none)
}
