// internal/api/middleware.go
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/WriteCraft/StoryBuilder/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// corsMiddleware 实现跨域资源共享
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware 为每个请求分配追踪ID
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// metricsMiddleware 记录请求计数和时延指标
func metricsMiddleware() gin.HandlerFunc {
	metrics := utils.GetMetricsCollector()

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		metrics.IncrementCounter("http.requests")
		metrics.IncrementCounter(fmt.Sprintf("http.responses.%dxx", c.Writer.Status()/100))
		metrics.SetGauge("http.last_request_ms", time.Since(start).Milliseconds())
	}
}
