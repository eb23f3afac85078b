package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/ctxutil"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
)

type stubLearningData struct {
	out    []types.DomainView
	err    error
	gotFor uuid.UUID
}

func (s *stubLearningData) GetUserLearningData(_ dbctx.Context, userID uuid.UUID) ([]types.DomainView, error) {
	s.gotFor = userID
	return s.out, s.err
}

func serveLearningData(t *testing.T, svc *stubLearningData, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/learning-data", func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
	}, NewLearningDataHandler(svc).GetLearningData)

	req := httptest.NewRequest(http.MethodGet, "/learning-data", nil).WithContext(context.Background())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetLearningDataEmptyCatalog(t *testing.T) {
	user := uuid.New()
	svc := &stubLearningData{}
	rec := serveLearningData(t, svc, user)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"domains":[]}`, rec.Body.String())
	assert.Equal(t, user, svc.gotFor)
}

func TestGetLearningDataFailureHidesCause(t *testing.T) {
	svc := &stubLearningData{err: errors.New("dial tcp 10.1.2.3:5432: connection refused")}
	rec := serveLearningData(t, svc, uuid.New())

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "learning_data_unavailable")
	assert.NotContains(t, rec.Body.String(), "10.1.2.3")
}
