package project

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

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates and inserts a new project, assigning id and createdAt.
func (s *Service) Create(ctx context.Context, proj *Project) (*Project, error) {
	if strings.TrimSpace(proj.ID) == "" {
		proj.ID = uuid.NewString()
	}
	if proj.Status == "" {
		proj.Status = StatusPlanning
	}
	proj.CreatedAt = time.Now()

	if err := validate.Struct(proj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Insert(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "name", proj.Name)
	return proj, nil
}

// Replace upserts the full project by id. createdAt of an existing row is
// preserved by the store; the caller supplies every other field.
func (s *Service) Replace(ctx context.Context, proj *Project) (*Project, error) {
	if strings.TrimSpace(proj.ID) == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidInput)
	}
	if proj.CreatedAt.IsZero() {
		proj.CreatedAt = time.Now()
	}

	if err := validate.Struct(proj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Replace(ctx, proj); err != nil {
		return nil, fmt.Errorf("replacing project: %w", err)
	}
	return proj, nil
}

// Delete removes a project by id. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// Get fetches a project by id.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects in store order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// ListByStatus returns projects with the given status.
func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Project, error) {
	return s.repo.ListByStatus(ctx, status)
}
