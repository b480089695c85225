package task

import "context"

// Repository provides persistence for tasks.
type Repository interface {
	Insert(ctx context.Context, t *Task) error
	Replace(ctx context.Context, t *Task) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByProject(ctx context.Context, projectID string) ([]Task, error)
	ListByStatus(ctx context.Context, status Status) ([]Task, error)
}
