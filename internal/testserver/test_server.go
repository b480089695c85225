package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/sitekeeper/internal/dashboard"
	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/sqlite"
	"github.com/quarrylabs/sitekeeper/internal/transport"
)

// TestServer runs the full HTTP surface over an in-memory store.
type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB

	Projects   *project.Service
	Workers    *worker.Service
	Tasks      *task.Service
	Attendance *attendance.Service
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.Open(dsn)
	require.NoError(t, err)

	projectRepo := sqlite.NewProjectRepository(db)
	workerRepo := sqlite.NewWorkerRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)

	projectSvc := project.NewService(projectRepo, nil)
	workerSvc := worker.NewService(workerRepo, nil)
	taskSvc := task.NewService(taskRepo, nil)
	attendanceSvc := attendance.NewService(attendanceRepo, nil)
	dashboardSvc := dashboard.NewService(projectRepo, workerRepo, taskRepo, attendanceRepo, nil)

	router := transport.NewRouter(transport.Services{
		Projects:   projectSvc,
		Workers:    workerSvc,
		Tasks:      taskSvc,
		Attendance: attendanceSvc,
		Dashboard:  dashboardSvc,
	}, nil)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:     server,
		DB:         db,
		Projects:   projectSvc,
		Workers:    workerSvc,
		Tasks:      taskSvc,
		Attendance: attendanceSvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// URL joins the server base URL with a path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
