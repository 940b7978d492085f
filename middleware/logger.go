package middleware

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLogger writes one JSON line per request, replacing Gin's default logger
// with a machine-parsable format. Request bodies are never logged.
func AccessLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		entry := struct {
			Timestamp string  `json:"ts"`
			Level     string  `json:"level"`
			RequestID string  `json:"requestId,omitempty"`
			ClientIP  string  `json:"ip"`
			Method    string  `json:"method"`
			Path      string  `json:"path"`
			Status    int     `json:"status"`
			LatencyMs float64 `json:"latencyMs"`
			BodySize  int     `json:"size"`
			Error     string  `json:"error,omitempty"`
		}{
			Timestamp: param.TimeStamp.UTC().Format(time.RFC3339Nano),
			Level:     "info",
			RequestID: param.Request.Header.Get("X-Request-ID"),
			ClientIP:  param.ClientIP,
			Method:    param.Method,
			Path:      param.Path,
			Status:    param.StatusCode,
			LatencyMs: float64(param.Latency) / float64(time.Millisecond),
			BodySize:  param.BodySize,
			Error:     param.ErrorMessage,
		}
		b, _ := json.Marshal(entry)
		return string(b) + "\n"
	})
}
