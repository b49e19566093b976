package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// ThresholdReader exposes the current sink thresholds
type ThresholdReader interface {
	Thresholds() logger.Thresholds
}

// LogHandler reports the log routing configuration
type LogHandler struct {
	thresholds ThresholdReader
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(thresholds ThresholdReader) *LogHandler {
	return &LogHandler{thresholds: thresholds}
}

// GetThresholds handles the GET /log/thresholds endpoint
func (h *LogHandler) GetThresholds(c *gin.Context) {
	th := h.thresholds.Thresholds()
	c.JSON(http.StatusOK, dto.ThresholdsResponse{
		Console: th.Console.Name(),
		Syslog:  th.Syslog.Name(),
	})
}
