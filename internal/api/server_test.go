package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	t.Parallel()

	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	srv := NewServer(":9090")
	require.NotNil(t, srv)
	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, serverReadTimeout, srv.ReadTimeout)
	assert.Equal(t, serverWriteTimeout, srv.WriteTimeout)
	assert.Equal(t, serverIdleTimeout, srv.IdleTimeout)
}
