package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/domain/task"
)

func (s *Server) listTasks(c *gin.Context) {
	ctx := c.Request.Context()

	if projectID := c.Query("project_id"); projectID != "" {
		tasks, err := s.svc.Tasks.ListByProject(ctx, projectID)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}
	if status := c.Query("status"); status != "" {
		tasks, err := s.svc.Tasks.ListByStatus(ctx, task.Status(status))
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	tasks, err := s.svc.Tasks.List(ctx)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) createTask(c *gin.Context) {
	var t task.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		s.writeBindError(c, err)
		return
	}

	created, err := s.svc.Tasks.Create(c.Request.Context(), &t)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getTask(c *gin.Context) {
	t, err := s.svc.Tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) replaceTask(c *gin.Context) {
	var t task.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		s.writeBindError(c, err)
		return
	}
	t.ID = c.Param("id")

	replaced, err := s.svc.Tasks.Replace(c.Request.Context(), &t)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, replaced)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.svc.Tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
