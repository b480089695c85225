package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/repository/mocks"
)

func newService() (*project.Service, *mocks.ProjectRepository) {
	repo := mocks.NewProjectRepository()
	return project.NewService(repo, nil), repo
}

func TestCreateAssignsIDAndCreatedAt(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), &project.Project{
		Name:      "Depot refit",
		StartDate: "2026-04-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, project.StatusPlanning, created.Status, "status defaults to planning")
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), &project.Project{
		Name:   "Depot refit",
		Status: "archived",
	})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), &project.Project{
		Name:      "Depot refit",
		StartDate: "01/04/2026",
	})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestCreateDuplicateID(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &project.Project{ID: "p1", Name: "First"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &project.Project{ID: "p1", Name: "Second"})
	require.ErrorIs(t, err, project.ErrDuplicateID)
}

func TestReplaceRequiresID(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Replace(context.Background(), &project.Project{Name: "No id"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestGetMissing(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	svc, _ := newService()

	require.NoError(t, svc.Delete(context.Background(), "missing"))
}
