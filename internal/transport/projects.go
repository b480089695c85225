package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/domain/project"
)

func (s *Server) listProjects(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		projects, err := s.svc.Projects.ListByStatus(c.Request.Context(), project.Status(status))
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	projects, err := s.svc.Projects.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) createProject(c *gin.Context) {
	var proj project.Project
	if err := c.ShouldBindJSON(&proj); err != nil {
		s.writeBindError(c, err)
		return
	}

	created, err := s.svc.Projects.Create(c.Request.Context(), &proj)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getProject(c *gin.Context) {
	proj, err := s.svc.Projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

func (s *Server) replaceProject(c *gin.Context) {
	var proj project.Project
	if err := c.ShouldBindJSON(&proj); err != nil {
		s.writeBindError(c, err)
		return
	}
	proj.ID = c.Param("id")

	replaced, err := s.svc.Projects.Replace(c.Request.Context(), &proj)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, replaced)
}

func (s *Server) deleteProject(c *gin.Context) {
	if err := s.svc.Projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
