package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/plantcare-server/internal/api/http/context"
	"github.com/dtroode/plantcare-server/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine returns an engine whose requests are authenticated as userID,
// or anonymous when userID is uuid.Nil.
func newTestEngine(userID uuid.UUID) (*gin.Engine, *httpcontext.Manager) {
	cm := httpcontext.NewManager()
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			ctx := cm.SetClaimsToContext(c.Request.Context(), model.AccessClaims{UserID: userID})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	})
	return engine, cm
}

func doRequest(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
