// Package dashboard derives read-only summaries from the four record kinds.
// Everything here is recomputed on each read; nothing is persisted.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/repository"
)

// Service aggregates store reads into dashboard figures.
type Service struct {
	projects   repository.ProjectRepository
	workers    repository.WorkerRepository
	tasks      repository.TaskRepository
	attendance repository.AttendanceRepository
	logger     *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(
	projects repository.ProjectRepository,
	workers repository.WorkerRepository,
	tasks repository.TaskRepository,
	attendance repository.AttendanceRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		projects:   projects,
		workers:    workers,
		tasks:      tasks,
		attendance: attendance,
		logger:     logger,
	}
}

// Summary is the dashboard's headline block.
type Summary struct {
	TotalProjects     int     `json:"total_projects"`
	ActiveProjects    int     `json:"active_projects"`
	CompletedProjects int     `json:"completed_projects"`
	TotalBudget       float64 `json:"total_budget"`
	TotalWorkers      int     `json:"total_workers"`
	ActiveWorkers     int     `json:"active_workers"`
	TotalTasks        int     `json:"total_tasks"`
	PendingTasks      int     `json:"pending_tasks"`
	InProgressTasks   int     `json:"in_progress_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	HoursToday        float64 `json:"hours_today"`
	HoursThisMonth    float64 `json:"hours_this_month"`
}

// ChartRow is one pre-aggregated datum for the charting collaborator, which
// consumes label/value pairs and does no data shaping of its own.
type ChartRow struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Summary computes the headline figures from a fresh read of every partition.
// A project counts as active when its own status is "active" or when at least
// one task referencing it is pending or in progress, regardless of the
// project's own status.
func (s *Service) Summary(ctx context.Context, today string) (*Summary, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workers: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	records, err := s.attendance.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing attendance: %w", err)
	}

	summary := &Summary{
		TotalProjects:  len(projects),
		ActiveProjects: len(activeProjectIDs(projects, tasks)),
		TotalWorkers:   len(workers),
		TotalTasks:     len(tasks),
	}

	for _, p := range projects {
		summary.TotalBudget += p.Budget
		if p.Status == project.StatusCompleted {
			summary.CompletedProjects++
		}
	}
	for _, w := range workers {
		if w.Status == worker.StatusActive {
			summary.ActiveWorkers++
		}
	}
	for _, t := range tasks {
		switch t.Status {
		case task.StatusPending:
			summary.PendingTasks++
		case task.StatusInProgress:
			summary.InProgressTasks++
		case task.StatusCompleted:
			summary.CompletedTasks++
		}
	}
	month := today
	if len(today) >= len("2006-01") {
		month = today[:len("2006-01")]
	}
	for _, rec := range records {
		if rec.Date == today {
			summary.HoursToday += rec.HoursWorked
		}
		if strings.HasPrefix(rec.Date, month) {
			summary.HoursThisMonth += rec.HoursWorked
		}
	}

	return summary, nil
}

// ProjectStatusChart returns project counts grouped by status.
func (s *Service) ProjectStatusChart(ctx context.Context) ([]ChartRow, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	counts := map[project.Status]int{}
	for _, p := range projects {
		counts[p.Status]++
	}

	rows := []ChartRow{}
	for _, status := range []project.Status{project.StatusPlanning, project.StatusActive, project.StatusCompleted, project.StatusPaused} {
		rows = append(rows, ChartRow{Label: string(status), Value: float64(counts[status])})
	}
	return rows, nil
}

// TaskStatusChart returns task counts grouped by status.
func (s *Service) TaskStatusChart(ctx context.Context) ([]ChartRow, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	counts := map[task.Status]int{}
	for _, t := range tasks {
		counts[t.Status]++
	}

	rows := []ChartRow{}
	for _, status := range []task.Status{task.StatusPending, task.StatusInProgress, task.StatusCompleted} {
		rows = append(rows, ChartRow{Label: string(status), Value: float64(counts[status])})
	}
	return rows, nil
}

// activeProjectIDs unions projects with status "active" and projects
// referenced by a pending or in-progress task. Task references that resolve
// to no known project are dangling and contribute nothing.
func activeProjectIDs(projects []project.Project, tasks []task.Task) map[string]struct{} {
	known := map[string]bool{}
	for _, p := range projects {
		known[p.ID] = p.Status == project.StatusActive
	}

	active := map[string]struct{}{}
	for id, isActive := range known {
		if isActive {
			active[id] = struct{}{}
		}
	}
	for _, t := range tasks {
		if t.Status != task.StatusPending && t.Status != task.StatusInProgress {
			continue
		}
		if _, ok := known[t.ProjectID]; ok {
			active[t.ProjectID] = struct{}{}
		}
	}
	return active
}
