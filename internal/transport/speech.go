package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarrylabs/sitekeeper/internal/speech"
)

// transcribe accepts a multipart audio upload and returns the transcript.
// When no backend is configured the client gets a 503 and falls back to
// manual text entry.
func (s *Server) transcribe(c *gin.Context) {
	if s.svc.Transcriber == nil {
		s.writeError(c, speech.ErrUnavailable)
		return
	}

	header, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing audio file: " + err.Error()})
		return
	}
	file, err := header.Open()
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer file.Close()

	text, err := s.svc.Transcriber.Transcribe(c.Request.Context(), header.Filename, file)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcript": text})
}
