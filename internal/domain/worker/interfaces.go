package worker

import "context"

// Repository provides persistence for workers.
type Repository interface {
	Insert(ctx context.Context, w *Worker) error
	Replace(ctx context.Context, w *Worker) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Worker, error)
	List(ctx context.Context) ([]Worker, error)
	ListByStatus(ctx context.Context, status Status) ([]Worker, error)
}
