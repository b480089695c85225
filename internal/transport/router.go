// Package transport exposes the record keeper over a local HTTP API: CRUD
// per record kind, report downloads, dashboard summaries and speech
// transcription.
package transport

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/dashboard"
	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/metrics"
	"github.com/quarrylabs/sitekeeper/internal/speech"
)

// Services bundles everything the router serves.
type Services struct {
	Projects    *project.Service
	Workers     *worker.Service
	Tasks       *task.Service
	Attendance  *attendance.Service
	Dashboard   *dashboard.Service
	Transcriber speech.Transcriber
}

// Server holds handler dependencies.
type Server struct {
	svc    Services
	logger *slog.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(svc Services, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{svc: svc, logger: logger}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), observeRequests())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/projects", s.listProjects)
		api.POST("/projects", s.createProject)
		api.GET("/projects/:id", s.getProject)
		api.PUT("/projects/:id", s.replaceProject)
		api.DELETE("/projects/:id", s.deleteProject)
		api.GET("/projects/:id/report", s.projectReport)

		api.GET("/workers", s.listWorkers)
		api.POST("/workers", s.createWorker)
		api.GET("/workers/:id", s.getWorker)
		api.PUT("/workers/:id", s.replaceWorker)
		api.DELETE("/workers/:id", s.deleteWorker)
		api.GET("/workers/:id/report", s.workerReport)

		api.GET("/tasks", s.listTasks)
		api.POST("/tasks", s.createTask)
		api.GET("/tasks/:id", s.getTask)
		api.PUT("/tasks/:id", s.replaceTask)
		api.DELETE("/tasks/:id", s.deleteTask)

		api.GET("/attendance", s.listAttendance)
		api.POST("/attendance", s.createAttendance)
		api.GET("/attendance/:id", s.getAttendance)
		api.PUT("/attendance/:id", s.replaceAttendance)
		api.DELETE("/attendance/:id", s.deleteAttendance)
		api.POST("/attendance/sheet", s.submitAttendanceSheet)

		api.GET("/reports/attendance", s.attendanceReport)

		api.GET("/dashboard", s.dashboardSummary)
		api.GET("/dashboard/charts", s.dashboardCharts)

		api.POST("/speech/transcriptions", s.transcribe)
	}

	return router
}

func observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
