package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	repository "github.com/quarrylabs/sitekeeper/internal/repoerr"
	"github.com/quarrylabs/sitekeeper/internal/validate"
)

// Service handles attendance operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new attendance service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates and inserts a new attendance record, assigning id and
// createdAt. A user-entered hoursWorked wins; otherwise hours are derived
// from checkIn/checkOut when a checkout exists.
func (s *Service) Create(ctx context.Context, rec *Record) (*Record, error) {
	if strings.TrimSpace(rec.ID) == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now()

	if rec.HoursWorked == 0 && rec.CheckOut != "" {
		rec.HoursWorked = DeriveHours(rec.CheckIn, rec.CheckOut)
	}

	if err := validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("creating attendance record: %w", err)
	}

	return rec, nil
}

// Replace upserts the full record by id; the store preserves createdAt of an
// existing row.
func (s *Service) Replace(ctx context.Context, rec *Record) (*Record, error) {
	if strings.TrimSpace(rec.ID) == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidInput)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.HoursWorked == 0 && rec.CheckOut != "" {
		rec.HoursWorked = DeriveHours(rec.CheckIn, rec.CheckOut)
	}

	if err := validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Replace(ctx, rec); err != nil {
		return nil, fmt.Errorf("replacing attendance record: %w", err)
	}
	return rec, nil
}

// Delete removes a record by id. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting attendance record: %w", err)
	}
	return nil
}

// Get fetches a record by id.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting attendance record: %w", err)
	}
	return rec, nil
}

// List returns all records in store order.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// ListByWorker returns records for one worker reference.
func (s *Service) ListByWorker(ctx context.Context, workerID string) ([]Record, error) {
	return s.repo.ListByWorker(ctx, workerID)
}

// ListByProject returns records for one project reference.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Record, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// ListByDate returns records for one date.
func (s *Service) ListByDate(ctx context.Context, date string) ([]Record, error) {
	return s.repo.ListByDate(ctx, date)
}

// SubmitSheet persists a multi-row entry form. Rows missing workerId,
// projectId, date or checkIn are skipped silently; valid rows are inserted
// one at a time with no batch atomicity, so a failure mid-sheet leaves the
// earlier rows persisted.
func (s *Service) SubmitSheet(ctx context.Context, rows []SheetRow) (*SheetResult, error) {
	result := &SheetResult{}
	for _, row := range rows {
		if !sheetRowComplete(row) {
			result.Skipped++
			continue
		}

		rec := &Record{
			WorkerID:    row.WorkerID,
			ProjectID:   row.ProjectID,
			TaskID:      row.TaskID,
			Date:        row.Date,
			CheckIn:     row.CheckIn,
			CheckOut:    row.CheckOut,
			HoursWorked: row.HoursWorked,
			Notes:       row.Notes,
		}

		saved, err := s.Create(ctx, rec)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("submitting sheet row: %w", err)
		}
		result.Saved++
		result.IDs = append(result.IDs, saved.ID)
	}

	s.logger.Info("attendance sheet submitted", "saved", result.Saved, "skipped", result.Skipped)
	return result, nil
}

func sheetRowComplete(row SheetRow) bool {
	return strings.TrimSpace(row.WorkerID) != "" &&
		strings.TrimSpace(row.ProjectID) != "" &&
		strings.TrimSpace(row.Date) != "" &&
		strings.TrimSpace(row.CheckIn) != ""
}

// DeriveHours computes worked hours from HH:MM check-in/check-out strings,
// rounded to two decimals. A checkout earlier than the check-in is taken as
// crossing midnight. Unparseable input yields 0.
func DeriveHours(checkIn, checkOut string) float64 {
	in, err := time.Parse("15:04", checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse("15:04", checkOut)
	if err != nil {
		return 0
	}

	d := out.Sub(in)
	if d < 0 {
		d += 24 * time.Hour
	}
	return math.Round(d.Hours()*100) / 100
}
