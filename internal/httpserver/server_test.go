package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycompany/evento-service/internal/models"
)

// stubStore satisfies Store without a database.
type stubStore struct {
	pingErr error
}

func (s *stubStore) SaveEvento(_ context.Context, e models.Evento) (models.Evento, error) {
	return e, nil
}

func (s *stubStore) FindAllEventos(context.Context) ([]models.Evento, error) {
	return nil, nil
}

func (s *stubStore) FindEvento(context.Context, int64) (models.Evento, error) {
	return models.Evento{}, models.ErrEventoNotFound
}

func (s *stubStore) DeleteEvento(context.Context, int64) error {
	return nil
}

func (s *stubStore) Ping(context.Context) error {
	return s.pingErr
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth_ReturnsOK(t *testing.T) {
	r := NewRouter(&stubStore{}, zerolog.Nop())

	w := get(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReady_OKWhenDBReachable(t *testing.T) {
	r := NewRouter(&stubStore{}, zerolog.Nop())

	w := get(t, r, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReady_UnavailableWhenDBDown(t *testing.T) {
	r := NewRouter(&stubStore{pingErr: errors.New("connection refused")}, zerolog.Nop())

	w := get(t, r, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetrics_Exposed(t *testing.T) {
	r := NewRouter(&stubStore{}, zerolog.Nop())

	w := get(t, r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_AssignedAndEchoed(t *testing.T) {
	r := NewRouter(&stubStore{}, zerolog.Nop())

	w := get(t, r, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestEventoRoutes_Wired(t *testing.T) {
	r := NewRouter(&stubStore{}, zerolog.Nop())

	w := get(t, r, "/api/eventos")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = get(t, r, "/api/eventos/1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
