package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	Insert(ctx context.Context, proj *Project) error
	Replace(ctx context.Context, proj *Project) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	ListByStatus(ctx context.Context, status Status) ([]Project, error)
}
