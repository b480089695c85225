package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
)

func (s *Server) listWorkers(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		workers, err := s.svc.Workers.ListByStatus(c.Request.Context(), worker.Status(status))
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, workers)
		return
	}

	workers, err := s.svc.Workers.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

func (s *Server) createWorker(c *gin.Context) {
	var w worker.Worker
	if err := c.ShouldBindJSON(&w); err != nil {
		s.writeBindError(c, err)
		return
	}

	created, err := s.svc.Workers.Create(c.Request.Context(), &w)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getWorker(c *gin.Context) {
	w, err := s.svc.Workers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) replaceWorker(c *gin.Context) {
	var w worker.Worker
	if err := c.ShouldBindJSON(&w); err != nil {
		s.writeBindError(c, err)
		return
	}
	w.ID = c.Param("id")

	replaced, err := s.svc.Workers.Replace(c.Request.Context(), &w)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, replaced)
}

func (s *Server) deleteWorker(c *gin.Context) {
	if err := s.svc.Workers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
