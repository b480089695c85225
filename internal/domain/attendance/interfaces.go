package attendance

import "context"

// Repository provides persistence for attendance records.
type Repository interface {
	Insert(ctx context.Context, rec *Record) error
	Replace(ctx context.Context, rec *Record) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByWorker(ctx context.Context, workerID string) ([]Record, error)
	ListByProject(ctx context.Context, projectID string) ([]Record, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)
}
