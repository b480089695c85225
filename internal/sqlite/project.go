package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quarrylabs/sitekeeper/internal/domain/material"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/metrics"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, name, description, start_date, end_date, status, budget, progress, location, materials, created_at`

// Insert adds a new project and fails on an existing id.
func (r *ProjectRepository) Insert(ctx context.Context, proj *project.Project) error {
	metrics.StoreOps.WithLabelValues("project", "insert").Inc()

	materials, err := marshalList(proj.Materials)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Name,
		proj.Description,
		proj.StartDate,
		proj.EndDate,
		proj.Status,
		proj.Budget,
		proj.Progress,
		proj.Location,
		materials,
		proj.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert project: %w", err)
	}

	return nil
}

// Replace upserts a project by id, overwriting every field except created_at,
// which keeps the value of the existing row when there is one.
func (r *ProjectRepository) Replace(ctx context.Context, proj *project.Project) error {
	metrics.StoreOps.WithLabelValues("project", "replace").Inc()

	materials, err := marshalList(proj.Materials)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			status = excluded.status,
			budget = excluded.budget,
			progress = excluded.progress,
			location = excluded.location,
			materials = excluded.materials
	`
	_, err = r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Name,
		proj.Description,
		proj.StartDate,
		proj.EndDate,
		proj.Status,
		proj.Budget,
		proj.Progress,
		proj.Location,
		materials,
		proj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to replace project: %w", err)
	}

	return nil
}

// Remove deletes a project by id. Removing a missing id is a no-op.
func (r *ProjectRepository) Remove(ctx context.Context, id string) error {
	metrics.StoreOps.WithLabelValues("project", "remove").Inc()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove project: %w", err)
	}
	return nil
}

// Get retrieves a project by id.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	metrics.StoreOps.WithLabelValues("project", "get").Inc()

	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	proj, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// List returns all projects in store order.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	metrics.StoreOps.WithLabelValues("project", "list").Inc()
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects`)
}

// ListByStatus returns projects matching status, in no guaranteed order.
func (r *ProjectRepository) ListByStatus(ctx context.Context, status project.Status) ([]project.Project, error) {
	metrics.StoreOps.WithLabelValues("project", "list_by_status").Inc()
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE status = ?`, status)
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var materials string
	err := row.Scan(
		&proj.ID,
		&proj.Name,
		&proj.Description,
		&proj.StartDate,
		&proj.EndDate,
		&proj.Status,
		&proj.Budget,
		&proj.Progress,
		&proj.Location,
		&materials,
		&proj.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	proj.Materials = []material.Material{}
	if err := unmarshalList(materials, &proj.Materials); err != nil {
		return nil, err
	}
	if len(proj.Materials) == 0 {
		proj.Materials = nil
	}

	return &proj, nil
}
