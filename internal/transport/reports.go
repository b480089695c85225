package transport

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/report"
)

// projectReport renders the project PDF from a point-in-time snapshot: the
// project, its tasks, and the workers those tasks reference. Dangling worker
// references are simply absent from the worker table.
func (s *Server) projectReport(c *gin.Context) {
	ctx := c.Request.Context()

	proj, err := s.svc.Projects.Get(ctx, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	tasks, err := s.svc.Tasks.ListByProject(ctx, proj.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	assigned := map[string]struct{}{}
	for _, t := range tasks {
		for _, workerID := range t.AssignedTo {
			assigned[workerID] = struct{}{}
		}
	}
	workers := []worker.Worker{}
	for workerID := range assigned {
		w, err := s.svc.Workers.Get(ctx, workerID)
		if errors.Is(err, worker.ErrWorkerNotFound) {
			// dangling reference: resolved to unknown, which for the
			// worker table means no row
			continue
		}
		if err != nil {
			s.writeError(c, err)
			return
		}
		workers = append(workers, *w)
	}

	doc, err := report.ProjectReport(proj, tasks, workers, report.Options{})
	if err != nil {
		s.writeError(c, err)
		return
	}
	writePDF(c, "project-"+proj.ID+".pdf", doc)
}

// attendanceReport renders the attendance PDF, optionally filtered by date,
// worker or project.
func (s *Server) attendanceReport(c *gin.Context) {
	ctx := c.Request.Context()

	var records []attendance.Record
	var err error
	switch {
	case c.Query("date") != "":
		records, err = s.svc.Attendance.ListByDate(ctx, c.Query("date"))
	case c.Query("worker_id") != "":
		records, err = s.svc.Attendance.ListByWorker(ctx, c.Query("worker_id"))
	case c.Query("project_id") != "":
		records, err = s.svc.Attendance.ListByProject(ctx, c.Query("project_id"))
	default:
		records, err = s.svc.Attendance.List(ctx)
	}
	if err != nil {
		s.writeError(c, err)
		return
	}

	workers, err := s.svc.Workers.List(ctx)
	if err != nil {
		s.writeError(c, err)
		return
	}
	projects, err := s.svc.Projects.List(ctx)
	if err != nil {
		s.writeError(c, err)
		return
	}

	doc, err := report.AttendanceReport(records, workers, projects, report.Options{})
	if err != nil {
		s.writeError(c, err)
		return
	}
	writePDF(c, "attendance-report.pdf", doc)
}

// workerReport renders one worker's PDF with their attendance history.
func (s *Server) workerReport(c *gin.Context) {
	ctx := c.Request.Context()

	w, err := s.svc.Workers.Get(ctx, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	records, err := s.svc.Attendance.ListByWorker(ctx, w.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	projects, err := s.svc.Projects.List(ctx)
	if err != nil {
		s.writeError(c, err)
		return
	}

	doc, err := report.WorkerReport(w, records, projects, report.Options{})
	if err != nil {
		s.writeError(c, err)
		return
	}
	writePDF(c, "worker-"+w.ID+".pdf", doc)
}
