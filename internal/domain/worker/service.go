package worker

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

// Service handles worker operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new worker service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates and inserts a new worker, assigning id and createdAt.
func (s *Service) Create(ctx context.Context, w *Worker) (*Worker, error) {
	if strings.TrimSpace(w.ID) == "" {
		w.ID = uuid.NewString()
	}
	if w.Status == "" {
		w.Status = StatusActive
	}
	w.CreatedAt = time.Now()

	if err := validate.Struct(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Insert(ctx, w); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("creating worker: %w", err)
	}

	s.logger.Info("worker created", "id", w.ID, "name", w.Name)
	return w, nil
}

// Replace upserts the full worker by id; the store preserves createdAt of an
// existing row.
func (s *Service) Replace(ctx context.Context, w *Worker) (*Worker, error) {
	if strings.TrimSpace(w.ID) == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidInput)
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}

	if err := validate.Struct(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Replace(ctx, w); err != nil {
		return nil, fmt.Errorf("replacing worker: %w", err)
	}
	return w, nil
}

// Delete removes a worker by id. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting worker: %w", err)
	}
	return nil
}

// Get fetches a worker by id.
func (s *Service) Get(ctx context.Context, id string) (*Worker, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("getting worker: %w", err)
	}
	return w, nil
}

// List returns all workers in store order.
func (s *Service) List(ctx context.Context) ([]Worker, error) {
	return s.repo.List(ctx)
}

// ListByStatus returns workers with the given status.
func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Worker, error) {
	return s.repo.ListByStatus(ctx, status)
}
