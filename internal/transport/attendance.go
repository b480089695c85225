package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
)

func (s *Server) listAttendance(c *gin.Context) {
	ctx := c.Request.Context()

	if workerID := c.Query("worker_id"); workerID != "" {
		records, err := s.svc.Attendance.ListByWorker(ctx, workerID)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}
	if projectID := c.Query("project_id"); projectID != "" {
		records, err := s.svc.Attendance.ListByProject(ctx, projectID)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}
	if date := c.Query("date"); date != "" {
		records, err := s.svc.Attendance.ListByDate(ctx, date)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := s.svc.Attendance.List(ctx)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) createAttendance(c *gin.Context) {
	var rec attendance.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		s.writeBindError(c, err)
		return
	}

	created, err := s.svc.Attendance.Create(c.Request.Context(), &rec)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getAttendance(c *gin.Context) {
	rec, err := s.svc.Attendance.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) replaceAttendance(c *gin.Context) {
	var rec attendance.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		s.writeBindError(c, err)
		return
	}
	rec.ID = c.Param("id")

	replaced, err := s.svc.Attendance.Replace(c.Request.Context(), &rec)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, replaced)
}

func (s *Server) deleteAttendance(c *gin.Context) {
	if err := s.svc.Attendance.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// submitAttendanceSheet accepts the multi-row entry form. Incomplete rows are
// skipped, not errors; the result reports both counts.
func (s *Server) submitAttendanceSheet(c *gin.Context) {
	var req struct {
		Rows []attendance.SheetRow `json:"rows"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	result, err := s.svc.Attendance.SubmitSheet(c.Request.Context(), req.Rows)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
