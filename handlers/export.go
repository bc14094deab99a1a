package handlers

import (
	"errors"
	"net/http"
	"os"

	"school-readiness-api/services"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exporter *services.Exporter
}

func NewExportHandler(exporter *services.Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Download streams today's history as a CSV attachment. The temp file is
// removed after the response is written, whether or not the transfer
// completed.
func (h *ExportHandler) Download(c *gin.Context) {
	path, filename, err := h.exporter.ExportToday()
	if err != nil {
		if errors.Is(err, services.ErrEmptyHistory) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no predictions data available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create export file"})
		return
	}
	defer os.Remove(path)

	c.Header("Cache-Control", "no-cache")
	c.FileAttachment(path, filename)
}
