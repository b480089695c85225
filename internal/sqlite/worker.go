package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/metrics"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

// WorkerRepository implements repository.WorkerRepository for SQLite
type WorkerRepository struct {
	db *DB
}

// NewWorkerRepository creates a new WorkerRepository
func NewWorkerRepository(db *DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

const workerColumns = `id, name, role, email, phone, hourly_rate, photo_ref, skills, status, created_at`

// Insert adds a new worker and fails on an existing id.
func (r *WorkerRepository) Insert(ctx context.Context, w *worker.Worker) error {
	metrics.StoreOps.WithLabelValues("worker", "insert").Inc()

	skills, err := marshalList(w.Skills)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO workers (` + workerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		w.ID,
		w.Name,
		w.Role,
		w.Email,
		w.Phone,
		w.HourlyRate,
		w.PhotoRef,
		skills,
		w.Status,
		w.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert worker: %w", err)
	}

	return nil
}

// Replace upserts a worker by id, preserving created_at of an existing row.
func (r *WorkerRepository) Replace(ctx context.Context, w *worker.Worker) error {
	metrics.StoreOps.WithLabelValues("worker", "replace").Inc()

	skills, err := marshalList(w.Skills)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO workers (` + workerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			role = excluded.role,
			email = excluded.email,
			phone = excluded.phone,
			hourly_rate = excluded.hourly_rate,
			photo_ref = excluded.photo_ref,
			skills = excluded.skills,
			status = excluded.status
	`
	_, err = r.db.ExecContext(ctx, query,
		w.ID,
		w.Name,
		w.Role,
		w.Email,
		w.Phone,
		w.HourlyRate,
		w.PhotoRef,
		skills,
		w.Status,
		w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to replace worker: %w", err)
	}

	return nil
}

// Remove deletes a worker by id. Removing a missing id is a no-op.
func (r *WorkerRepository) Remove(ctx context.Context, id string) error {
	metrics.StoreOps.WithLabelValues("worker", "remove").Inc()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove worker: %w", err)
	}
	return nil
}

// Get retrieves a worker by id.
func (r *WorkerRepository) Get(ctx context.Context, id string) (*worker.Worker, error) {
	metrics.StoreOps.WithLabelValues("worker", "get").Inc()

	row := r.db.QueryRowContext(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = ?`, id)
	w, err := scanWorker(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return w, nil
}

// List returns all workers in store order.
func (r *WorkerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	metrics.StoreOps.WithLabelValues("worker", "list").Inc()
	return r.queryWorkers(ctx, `SELECT `+workerColumns+` FROM workers`)
}

// ListByStatus returns workers matching status, in no guaranteed order.
func (r *WorkerRepository) ListByStatus(ctx context.Context, status worker.Status) ([]worker.Worker, error) {
	metrics.StoreOps.WithLabelValues("worker", "list_by_status").Inc()
	return r.queryWorkers(ctx, `SELECT `+workerColumns+` FROM workers WHERE status = ?`, status)
}

func (r *WorkerRepository) queryWorkers(ctx context.Context, query string, args ...any) ([]worker.Worker, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := []worker.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating worker rows: %w", err)
	}

	return workers, nil
}

func scanWorker(row rowScanner) (*worker.Worker, error) {
	var w worker.Worker
	var skills string
	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.Role,
		&w.Email,
		&w.Phone,
		&w.HourlyRate,
		&w.PhotoRef,
		&skills,
		&w.Status,
		&w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Skills = []string{}
	if err := unmarshalList(skills, &w.Skills); err != nil {
		return nil, err
	}
	if len(w.Skills) == 0 {
		w.Skills = nil
	}

	return &w, nil
}
