package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/repository"
	"github.com/quarrylabs/sitekeeper/internal/speech"
)

// writeError maps the error taxonomy onto HTTP statuses. Store failures are
// surfaced to the initiating action; nothing here retries.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, worker.ErrWorkerNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, attendance.ErrRecordNotFound),
		errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, project.ErrDuplicateID),
		errors.Is(err, worker.ErrDuplicateID),
		errors.Is(err, task.ErrDuplicateID),
		errors.Is(err, attendance.ErrDuplicateID),
		errors.Is(err, repository.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, worker.ErrInvalidInput),
		errors.Is(err, task.ErrInvalidInput),
		errors.Is(err, attendance.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, speech.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, repository.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
}

func writePDF(c *gin.Context, filename string, doc []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
