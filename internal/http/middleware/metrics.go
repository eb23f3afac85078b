package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
)

// Metrics records request counts and latency per route template. Unmatched
// routes share one label.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method
		m.ObserveAPI(method, route, status, time.Since(start))
	}
}
