package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/sitekeeper/internal/dashboard"
	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/repository/mocks"
)

type fixture struct {
	svc        *dashboard.Service
	projects   *mocks.ProjectRepository
	workers    *mocks.WorkerRepository
	tasks      *mocks.TaskRepository
	attendance *mocks.AttendanceRepository
}

func newFixture() *fixture {
	f := &fixture{
		projects:   mocks.NewProjectRepository(),
		workers:    mocks.NewWorkerRepository(),
		tasks:      mocks.NewTaskRepository(),
		attendance: mocks.NewAttendanceRepository(),
	}
	f.svc = dashboard.NewService(f.projects, f.workers, f.tasks, f.attendance, nil)
	return f
}

func TestSummaryEmptyStore(t *testing.T) {
	f := newFixture()

	summary, err := f.svc.Summary(context.Background(), "2026-03-15")
	require.NoError(t, err)
	require.Equal(t, 0, summary.TotalProjects)
	require.Equal(t, 0, summary.ActiveProjects)
	require.Equal(t, 0.0, summary.HoursToday)
}

func TestSummaryActiveProjectUnion(t *testing.T) {
	f := newFixture()

	f.projects.Records["p1"] = project.Project{ID: "p1", Status: project.StatusActive}
	// Planning project with an in-progress task still counts as active.
	f.projects.Records["p2"] = project.Project{ID: "p2", Status: project.StatusPlanning}
	f.projects.Records["p3"] = project.Project{ID: "p3", Status: project.StatusCompleted}

	f.tasks.Records["t1"] = task.Task{ID: "t1", ProjectID: "p2", Status: task.StatusInProgress}
	// Dangling reference contributes nothing.
	f.tasks.Records["t2"] = task.Task{ID: "t2", ProjectID: "gone", Status: task.StatusPending}
	// Completed task does not make its project active.
	f.tasks.Records["t3"] = task.Task{ID: "t3", ProjectID: "p3", Status: task.StatusCompleted}

	summary, err := f.svc.Summary(context.Background(), "2026-03-15")
	require.NoError(t, err)
	require.Equal(t, 3, summary.TotalProjects)
	require.Equal(t, 2, summary.ActiveProjects)
	require.Equal(t, 1, summary.CompletedProjects)
	require.Equal(t, 1, summary.PendingTasks)
	require.Equal(t, 1, summary.InProgressTasks)
	require.Equal(t, 1, summary.CompletedTasks)
}

func TestSummaryTotals(t *testing.T) {
	f := newFixture()

	f.projects.Records["p1"] = project.Project{ID: "p1", Status: project.StatusActive, Budget: 500000}
	f.projects.Records["p2"] = project.Project{ID: "p2", Status: project.StatusPlanning, Budget: 250000}
	f.workers.Records["w1"] = worker.Worker{ID: "w1", Status: worker.StatusActive}
	f.workers.Records["w2"] = worker.Worker{ID: "w2", Status: worker.StatusInactive}
	f.attendance.Records["a1"] = attendance.Record{ID: "a1", WorkerID: "w1", ProjectID: "p1", Date: "2026-03-15", HoursWorked: 8}
	f.attendance.Records["a2"] = attendance.Record{ID: "a2", WorkerID: "w2", ProjectID: "p1", Date: "2026-03-14", HoursWorked: 6}

	summary, err := f.svc.Summary(context.Background(), "2026-03-15")
	require.NoError(t, err)
	require.Equal(t, 750000.0, summary.TotalBudget)
	require.Equal(t, 2, summary.TotalWorkers)
	require.Equal(t, 1, summary.ActiveWorkers)
	require.Equal(t, 8.0, summary.HoursToday, "only today's records count")
	require.Equal(t, 14.0, summary.HoursThisMonth)
}

func TestSummaryHoursThisMonth(t *testing.T) {
	f := newFixture()

	f.attendance.Records["a1"] = attendance.Record{ID: "a1", WorkerID: "w1", ProjectID: "p1", Date: "2026-03-15", HoursWorked: 8}
	f.attendance.Records["a2"] = attendance.Record{ID: "a2", WorkerID: "w1", ProjectID: "p1", Date: "2026-03-02", HoursWorked: 6.5}
	// Previous month stays out of the figure.
	f.attendance.Records["a3"] = attendance.Record{ID: "a3", WorkerID: "w1", ProjectID: "p1", Date: "2026-02-28", HoursWorked: 7}

	summary, err := f.svc.Summary(context.Background(), "2026-03-15")
	require.NoError(t, err)
	require.Equal(t, 8.0, summary.HoursToday)
	require.Equal(t, 14.5, summary.HoursThisMonth)
}

func TestProjectStatusChart(t *testing.T) {
	f := newFixture()

	f.projects.Records["p1"] = project.Project{ID: "p1", Status: project.StatusActive}
	f.projects.Records["p2"] = project.Project{ID: "p2", Status: project.StatusActive}
	f.projects.Records["p3"] = project.Project{ID: "p3", Status: project.StatusPaused}

	rows, err := f.svc.ProjectStatusChart(context.Background())
	require.NoError(t, err)
	require.Equal(t, []dashboard.ChartRow{
		{Label: "planning", Value: 0},
		{Label: "active", Value: 2},
		{Label: "completed", Value: 0},
		{Label: "paused", Value: 1},
	}, rows)
}

func TestTaskStatusChart(t *testing.T) {
	f := newFixture()

	f.tasks.Records["t1"] = task.Task{ID: "t1", ProjectID: "p1", Status: task.StatusPending}
	f.tasks.Records["t2"] = task.Task{ID: "t2", ProjectID: "p1", Status: task.StatusCompleted}

	rows, err := f.svc.TaskStatusChart(context.Background())
	require.NoError(t, err)
	require.Equal(t, []dashboard.ChartRow{
		{Label: "pending", Value: 1},
		{Label: "in-progress", Value: 0},
		{Label: "completed", Value: 1},
	}, rows)
}
