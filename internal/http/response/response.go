package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError writes err with its own status and code when it carries an
// apierr.Error. Anything else becomes a 500 with fallbackCode and a generic
// message.
func RespondAPIError(c *gin.Context, err error, fallbackCode string) {
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := ae.Code
		if code == "" {
			code = fallbackCode
		}
		if status >= http.StatusInternalServerError {
			RespondError(c, status, code, errInternal)
			return
		}
		RespondError(c, status, code, ae)
		return
	}
	RespondError(c, http.StatusInternalServerError, fallbackCode, errInternal)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
