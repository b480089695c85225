package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) dashboardSummary(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	summary, err := s.svc.Dashboard.Summary(c.Request.Context(), today)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) dashboardCharts(c *gin.Context) {
	ctx := c.Request.Context()

	projectRows, err := s.svc.Dashboard.ProjectStatusChart(ctx)
	if err != nil {
		s.writeError(c, err)
		return
	}
	taskRows, err := s.svc.Dashboard.TaskStatusChart(ctx)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects_by_status": projectRows,
		"tasks_by_status":    taskRows,
	})
}
