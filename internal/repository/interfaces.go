package repository

import (
	"context"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
)

// ProjectRepository manages project persistence
type ProjectRepository interface {
	Insert(ctx context.Context, proj *project.Project) error
	Replace(ctx context.Context, proj *project.Project) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	ListByStatus(ctx context.Context, status project.Status) ([]project.Project, error)
}

// WorkerRepository manages worker persistence
type WorkerRepository interface {
	Insert(ctx context.Context, w *worker.Worker) error
	Replace(ctx context.Context, w *worker.Worker) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*worker.Worker, error)
	List(ctx context.Context) ([]worker.Worker, error)
	ListByStatus(ctx context.Context, status worker.Status) ([]worker.Worker, error)
}

// TaskRepository manages task persistence
type TaskRepository interface {
	Insert(ctx context.Context, t *task.Task) error
	Replace(ctx context.Context, t *task.Task) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*task.Task, error)
	List(ctx context.Context) ([]task.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]task.Task, error)
	ListByStatus(ctx context.Context, status task.Status) ([]task.Task, error)
}

// AttendanceRepository manages attendance persistence
type AttendanceRepository interface {
	Insert(ctx context.Context, rec *attendance.Record) error
	Replace(ctx context.Context, rec *attendance.Record) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*attendance.Record, error)
	List(ctx context.Context) ([]attendance.Record, error)
	ListByWorker(ctx context.Context, workerID string) ([]attendance.Record, error)
	ListByProject(ctx context.Context, projectID string) ([]attendance.Record, error)
	ListByDate(ctx context.Context, date string) ([]attendance.Record, error)
}
