package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewLoggerWritesJSONOutsideDev(t *testing.T) {
	var buf bytes.Buffer
	newLogger("prod", &buf).Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])
	assert.Contains(t, line, "source")
}

func TestNewLoggerDevIsText(t *testing.T) {
	var buf bytes.Buffer
	newLogger("dev", &buf).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestRequestIDPropagates(t *testing.T) {
	var buf bytes.Buffer
	mw := Middleware{Logger: newLogger("prod", &buf)}
	r := gin.New()
	r.Use(mw.RequestID(), mw.LoggerMiddleware())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestReadyz(t *testing.T) {
	ready := errors.New("db down")
	h := HealthHandlers{Ready: func(ctx context.Context) error { return ready }}
	r := gin.New()
	r.GET("/livez", h.Livez)
	r.GET("/readyz", h.Readyz)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db down")

	ready = nil
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
