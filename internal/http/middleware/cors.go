package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultCORSOrigins covers the local dashboard dev servers.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"X-Requested-With",
			headerUserID,
			headerAdminKey,
			headerRequestID,
			headerTraceID,
		},
		ExposeHeaders:    []string{headerTraceID, headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
