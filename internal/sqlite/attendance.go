package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/metrics"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

// AttendanceRepository implements repository.AttendanceRepository for SQLite
type AttendanceRepository struct {
	db *DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `id, worker_id, project_id, task_id, date, check_in, check_out, hours_worked, notes, created_at`

// Insert adds a new attendance record and fails on an existing id.
func (r *AttendanceRepository) Insert(ctx context.Context, rec *attendance.Record) error {
	metrics.StoreOps.WithLabelValues("attendance", "insert").Inc()

	query := `
		INSERT INTO attendance (` + attendanceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.WorkerID,
		rec.ProjectID,
		rec.TaskID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.HoursWorked,
		rec.Notes,
		rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return nil
}

// Replace upserts a record by id, preserving created_at of an existing row.
func (r *AttendanceRepository) Replace(ctx context.Context, rec *attendance.Record) error {
	metrics.StoreOps.WithLabelValues("attendance", "replace").Inc()

	query := `
		INSERT INTO attendance (` + attendanceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			worker_id = excluded.worker_id,
			project_id = excluded.project_id,
			task_id = excluded.task_id,
			date = excluded.date,
			check_in = excluded.check_in,
			check_out = excluded.check_out,
			hours_worked = excluded.hours_worked,
			notes = excluded.notes
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.WorkerID,
		rec.ProjectID,
		rec.TaskID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.HoursWorked,
		rec.Notes,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to replace attendance record: %w", err)
	}

	return nil
}

// Remove deletes a record by id. Removing a missing id is a no-op.
func (r *AttendanceRepository) Remove(ctx context.Context, id string) error {
	metrics.StoreOps.WithLabelValues("attendance", "remove").Inc()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove attendance record: %w", err)
	}
	return nil
}

// Get retrieves a record by id.
func (r *AttendanceRepository) Get(ctx context.Context, id string) (*attendance.Record, error) {
	metrics.StoreOps.WithLabelValues("attendance", "get").Inc()

	row := r.db.QueryRowContext(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE id = ?`, id)
	rec, err := scanAttendance(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// List returns all records in store order.
func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	metrics.StoreOps.WithLabelValues("attendance", "list").Inc()
	return r.queryRecords(ctx, `SELECT `+attendanceColumns+` FROM attendance`)
}

// ListByWorker returns records whose worker reference equals workerID.
func (r *AttendanceRepository) ListByWorker(ctx context.Context, workerID string) ([]attendance.Record, error) {
	metrics.StoreOps.WithLabelValues("attendance", "list_by_worker").Inc()
	return r.queryRecords(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE worker_id = ?`, workerID)
}

// ListByProject returns records whose project reference equals projectID.
func (r *AttendanceRepository) ListByProject(ctx context.Context, projectID string) ([]attendance.Record, error) {
	metrics.StoreOps.WithLabelValues("attendance", "list_by_project").Inc()
	return r.queryRecords(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE project_id = ?`, projectID)
}

// ListByDate returns records for one YYYY-MM-DD date.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	metrics.StoreOps.WithLabelValues("attendance", "list_by_date").Inc()
	return r.queryRecords(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE date = ?`, date)
}

func (r *AttendanceRepository) queryRecords(ctx context.Context, query string, args ...any) ([]attendance.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

func scanAttendance(row rowScanner) (*attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.WorkerID,
		&rec.ProjectID,
		&rec.TaskID,
		&rec.Date,
		&rec.CheckIn,
		&rec.CheckOut,
		&rec.HoursWorked,
		&rec.Notes,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
