package handlers

import (
	"net/http"
	"strings"

	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogsHandler ingests log batches from the web frontend and forwards
// them into the backend log stream so both ends of a request can be
// correlated in one place.
type LogsHandler struct{}

type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

type LogBatchRequest struct {
	Logs []LogEntry `json:"logs" binding:"required,max=100,dive"`
}

func NewLogsHandler() *LogsHandler {
	return &LogsHandler{}
}

func (h *LogsHandler) ReceiveFrontendLogs(c *gin.Context) {
	var req LogBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.Logs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No logs provided"})
		return
	}

	for _, entry := range req.Logs {
		forwardLogEntry(entry)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "received": len(req.Logs)})
}

func forwardLogEntry(entry LogEntry) {
	fields := make([]zap.Field, 0, len(entry.Context)+2)
	fields = append(fields,
		zap.String("service", "frontend"),
		zap.String("client_ts", entry.Timestamp),
	)
	for k, v := range entry.Context {
		fields = append(fields, zap.Any(k, v))
	}

	switch strings.ToLower(entry.Level) {
	case "error", "fatal":
		logger.Error(entry.Message, fields...)
	case "warn", "warning":
		logger.Warn(entry.Message, fields...)
	case "debug":
		logger.Debug(entry.Message, fields...)
	default:
		logger.Info(entry.Message, fields...)
	}
}
