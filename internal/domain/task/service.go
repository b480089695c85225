package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	repository "github.com/quarrylabs/sitekeeper/internal/repoerr"
	"github.com/quarrylabs/sitekeeper/internal/validate"
)

// Service handles task operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new task service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates and inserts a new task, assigning id and createdAt.
func (s *Service) Create(ctx context.Context, t *Task) (*Task, error) {
	if strings.TrimSpace(t.ID) == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	t.CreatedAt = time.Now()

	if err := validate.Struct(t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Insert(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logger.Info("task created", "id", t.ID, "project_id", t.ProjectID, "title", t.Title)
	return t, nil
}

// Replace upserts the full task by id; the store preserves createdAt of an
// existing row.
func (s *Service) Replace(ctx context.Context, t *Task) (*Task, error) {
	if strings.TrimSpace(t.ID) == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidInput)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	if err := validate.Struct(t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Replace(ctx, t); err != nil {
		return nil, fmt.Errorf("replacing task: %w", err)
	}
	return t, nil
}

// Delete removes a task by id. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// Get fetches a task by id.
func (s *Service) Get(ctx context.Context, id string) (*Task, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}

// List returns all tasks in store order.
func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.repo.List(ctx)
}

// ListByProject returns the tasks whose project reference equals projectID.
// The reference is not checked against the project partition; an unknown
// projectID simply yields an empty slice.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Task, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// ListByStatus returns tasks with the given status.
func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Task, error) {
	return s.repo.ListByStatus(ctx, status)
}
