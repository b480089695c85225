// Package mocks provides map-backed in-memory repository fakes for service
// and dashboard tests. They honor the store contract: duplicate-id inserts
// fail, replace preserves createdAt, removes are idempotent, lookups return
// the not-found sentinel.
package mocks

import (
	"context"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

// ProjectRepository is an in-memory repository.ProjectRepository.
type ProjectRepository struct {
	Records map[string]project.Project
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{Records: map[string]project.Project{}}
}

func (m *ProjectRepository) Insert(_ context.Context, proj *project.Project) error {
	if _, ok := m.Records[proj.ID]; ok {
		return repository.ErrDuplicateKey
	}
	m.Records[proj.ID] = *proj
	return nil
}

func (m *ProjectRepository) Replace(_ context.Context, proj *project.Project) error {
	next := *proj
	if prev, ok := m.Records[proj.ID]; ok {
		next.CreatedAt = prev.CreatedAt
	}
	m.Records[proj.ID] = next
	return nil
}

func (m *ProjectRepository) Remove(_ context.Context, id string) error {
	delete(m.Records, id)
	return nil
}

func (m *ProjectRepository) Get(_ context.Context, id string) (*project.Project, error) {
	proj, ok := m.Records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &proj, nil
}

func (m *ProjectRepository) List(_ context.Context) ([]project.Project, error) {
	projects := []project.Project{}
	for _, proj := range m.Records {
		projects = append(projects, proj)
	}
	return projects, nil
}

func (m *ProjectRepository) ListByStatus(_ context.Context, status project.Status) ([]project.Project, error) {
	projects := []project.Project{}
	for _, proj := range m.Records {
		if proj.Status == status {
			projects = append(projects, proj)
		}
	}
	return projects, nil
}

// WorkerRepository is an in-memory repository.WorkerRepository.
type WorkerRepository struct {
	Records map[string]worker.Worker
}

func NewWorkerRepository() *WorkerRepository {
	return &WorkerRepository{Records: map[string]worker.Worker{}}
}

func (m *WorkerRepository) Insert(_ context.Context, w *worker.Worker) error {
	if _, ok := m.Records[w.ID]; ok {
		return repository.ErrDuplicateKey
	}
	m.Records[w.ID] = *w
	return nil
}

func (m *WorkerRepository) Replace(_ context.Context, w *worker.Worker) error {
	next := *w
	if prev, ok := m.Records[w.ID]; ok {
		next.CreatedAt = prev.CreatedAt
	}
	m.Records[w.ID] = next
	return nil
}

func (m *WorkerRepository) Remove(_ context.Context, id string) error {
	delete(m.Records, id)
	return nil
}

func (m *WorkerRepository) Get(_ context.Context, id string) (*worker.Worker, error) {
	w, ok := m.Records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (m *WorkerRepository) List(_ context.Context) ([]worker.Worker, error) {
	workers := []worker.Worker{}
	for _, w := range m.Records {
		workers = append(workers, w)
	}
	return workers, nil
}

func (m *WorkerRepository) ListByStatus(_ context.Context, status worker.Status) ([]worker.Worker, error) {
	workers := []worker.Worker{}
	for _, w := range m.Records {
		if w.Status == status {
			workers = append(workers, w)
		}
	}
	return workers, nil
}

// TaskRepository is an in-memory repository.TaskRepository.
type TaskRepository struct {
	Records map[string]task.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{Records: map[string]task.Task{}}
}

func (m *TaskRepository) Insert(_ context.Context, t *task.Task) error {
	if _, ok := m.Records[t.ID]; ok {
		return repository.ErrDuplicateKey
	}
	m.Records[t.ID] = *t
	return nil
}

func (m *TaskRepository) Replace(_ context.Context, t *task.Task) error {
	next := *t
	if prev, ok := m.Records[t.ID]; ok {
		next.CreatedAt = prev.CreatedAt
	}
	m.Records[t.ID] = next
	return nil
}

func (m *TaskRepository) Remove(_ context.Context, id string) error {
	delete(m.Records, id)
	return nil
}

func (m *TaskRepository) Get(_ context.Context, id string) (*task.Task, error) {
	t, ok := m.Records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (m *TaskRepository) List(_ context.Context) ([]task.Task, error) {
	tasks := []task.Task{}
	for _, t := range m.Records {
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (m *TaskRepository) ListByProject(_ context.Context, projectID string) ([]task.Task, error) {
	tasks := []task.Task{}
	for _, t := range m.Records {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (m *TaskRepository) ListByStatus(_ context.Context, status task.Status) ([]task.Task, error) {
	tasks := []task.Task{}
	for _, t := range m.Records {
		if t.Status == status {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// AttendanceRepository is an in-memory repository.AttendanceRepository.
type AttendanceRepository struct {
	Records map[string]attendance.Record
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{Records: map[string]attendance.Record{}}
}

func (m *AttendanceRepository) Insert(_ context.Context, rec *attendance.Record) error {
	if _, ok := m.Records[rec.ID]; ok {
		return repository.ErrDuplicateKey
	}
	m.Records[rec.ID] = *rec
	return nil
}

func (m *AttendanceRepository) Replace(_ context.Context, rec *attendance.Record) error {
	next := *rec
	if prev, ok := m.Records[rec.ID]; ok {
		next.CreatedAt = prev.CreatedAt
	}
	m.Records[rec.ID] = next
	return nil
}

func (m *AttendanceRepository) Remove(_ context.Context, id string) error {
	delete(m.Records, id)
	return nil
}

func (m *AttendanceRepository) Get(_ context.Context, id string) (*attendance.Record, error) {
	rec, ok := m.Records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (m *AttendanceRepository) List(_ context.Context) ([]attendance.Record, error) {
	records := []attendance.Record{}
	for _, rec := range m.Records {
		records = append(records, rec)
	}
	return records, nil
}

func (m *AttendanceRepository) ListByWorker(_ context.Context, workerID string) ([]attendance.Record, error) {
	records := []attendance.Record{}
	for _, rec := range m.Records {
		if rec.WorkerID == workerID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (m *AttendanceRepository) ListByProject(_ context.Context, projectID string) ([]attendance.Record, error) {
	records := []attendance.Record{}
	for _, rec := range m.Records {
		if rec.ProjectID == projectID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (m *AttendanceRepository) ListByDate(_ context.Context, date string) ([]attendance.Record, error) {
	records := []attendance.Record{}
	for _, rec := range m.Records {
		if rec.Date == date {
			records = append(records, rec)
		}
	}
	return records, nil
}
