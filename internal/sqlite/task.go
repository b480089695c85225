package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quarrylabs/sitekeeper/internal/domain/material"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/metrics"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

// TaskRepository implements repository.TaskRepository for SQLite
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, project_id, title, description, assigned_to, status, priority, due_date, progress, materials, images, created_at`

// Insert adds a new task and fails on an existing id.
func (r *TaskRepository) Insert(ctx context.Context, t *task.Task) error {
	metrics.StoreOps.WithLabelValues("task", "insert").Inc()

	assigned, materials, images, err := marshalTaskLists(t)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		t.Description,
		assigned,
		t.Status,
		t.Priority,
		t.DueDate,
		t.Progress,
		materials,
		images,
		t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// Replace upserts a task by id, preserving created_at of an existing row.
func (r *TaskRepository) Replace(ctx context.Context, t *task.Task) error {
	metrics.StoreOps.WithLabelValues("task", "replace").Inc()

	assigned, materials, images, err := marshalTaskLists(t)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project_id = excluded.project_id,
			title = excluded.title,
			description = excluded.description,
			assigned_to = excluded.assigned_to,
			status = excluded.status,
			priority = excluded.priority,
			due_date = excluded.due_date,
			progress = excluded.progress,
			materials = excluded.materials,
			images = excluded.images
	`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		t.Description,
		assigned,
		t.Status,
		t.Priority,
		t.DueDate,
		t.Progress,
		materials,
		images,
		t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to replace task: %w", err)
	}

	return nil
}

// Remove deletes a task by id. Removing a missing id is a no-op.
func (r *TaskRepository) Remove(ctx context.Context, id string) error {
	metrics.StoreOps.WithLabelValues("task", "remove").Inc()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove task: %w", err)
	}
	return nil
}

// Get retrieves a task by id.
func (r *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	metrics.StoreOps.WithLabelValues("task", "get").Inc()

	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// List returns all tasks in store order.
func (r *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	metrics.StoreOps.WithLabelValues("task", "list").Inc()
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks`)
}

// ListByProject returns tasks whose project reference equals projectID.
// Zero matches yield an empty slice, not an error.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]task.Task, error) {
	metrics.StoreOps.WithLabelValues("task", "list_by_project").Inc()
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id = ?`, projectID)
}

// ListByStatus returns tasks matching status, in no guaranteed order.
func (r *TaskRepository) ListByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	metrics.StoreOps.WithLabelValues("task", "list_by_status").Inc()
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE status = ?`, status)
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]task.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

func marshalTaskLists(t *task.Task) (assigned, materials, images string, err error) {
	if assigned, err = marshalList(t.AssignedTo); err != nil {
		return
	}
	if materials, err = marshalList(t.Materials); err != nil {
		return
	}
	images, err = marshalList(t.Images)
	return
}

func scanTask(row rowScanner) (*task.Task, error) {
	var t task.Task
	var assigned, materials, images string
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&assigned,
		&t.Status,
		&t.Priority,
		&t.DueDate,
		&t.Progress,
		&materials,
		&images,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.AssignedTo = []string{}
	if err := unmarshalList(assigned, &t.AssignedTo); err != nil {
		return nil, err
	}
	t.Materials = []material.Material{}
	if err := unmarshalList(materials, &t.Materials); err != nil {
		return nil, err
	}
	t.Images = []string{}
	if err := unmarshalList(images, &t.Images); err != nil {
		return nil, err
	}
	if len(t.AssignedTo) == 0 {
		t.AssignedTo = nil
	}
	if len(t.Materials) == 0 {
		t.Materials = nil
	}
	if len(t.Images) == 0 {
		t.Images = nil
	}

	return &t, nil
}
