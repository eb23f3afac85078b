package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/ctxutil"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

const (
	headerUserID   = "X-User-Id"
	headerAdminKey = "X-Admin-Key"
)

type AuthMiddleware struct {
	log      *logger.Logger
	adminKey string
}

// NewAuthMiddleware trusts the user id forwarded by the upstream identity
// provider. adminKey guards catalog writes; empty disables them.
func NewAuthMiddleware(log *logger.Logger, adminKey string) *AuthMiddleware {
	return &AuthMiddleware{
		log:      log.With("Middleware", "AuthMiddleware"),
		adminKey: strings.TrimSpace(adminKey),
	}
}

func (am *AuthMiddleware) AdminEnabled() bool {
	return am != nil && am.adminKey != ""
}

func (am *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(headerUserID))
		if raw == "" {
			raw = strings.TrimSpace(c.Query("user_id"))
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing user id", "code": "unauthorized"},
			})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			am.log.Debug("rejected user id", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "invalid user id", "code": "unauthorized"},
			})
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (am *AuthMiddleware) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !am.AdminEnabled() {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": gin.H{"message": "admin api disabled", "code": "not_found"},
			})
			return
		}
		got := strings.TrimSpace(c.GetHeader(headerAdminKey))
		if subtle.ConstantTimeCompare([]byte(got), []byte(am.adminKey)) != 1 {
			am.log.Warn("admin key rejected", "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "forbidden", "code": "forbidden"},
			})
			return
		}
		c.Next()
	}
}
