package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/response"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
)

// uuidParam parses a path parameter and writes a 400 when it is not a uuid.
func uuidParam(c *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		if err == nil {
			err = errNilID
		}
		response.RespondError(c, http.StatusBadRequest, code, err)
		return uuid.Nil, false
	}
	return id, true
}

func requestDBC(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}
