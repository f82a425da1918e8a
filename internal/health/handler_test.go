package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalin-pixel/cliqo-receptionist/internal/docstore"
	"github.com/nalin-pixel/cliqo-receptionist/pkg/logging"
)

type stubProbe struct {
	pingErr     error
	names       []string
	collErr     error
	pingInvoked bool
}

func (s *stubProbe) Ping(context.Context) error {
	s.pingInvoked = true
	return s.pingErr
}
func (s *stubProbe) Collections(context.Context) ([]string, error) { return s.names, s.collErr }
func (s *stubProbe) Name() string                                  { return "stub" }

func getStatus(t *testing.T, probe Probe, env Env) StatusResponse {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(probe, env, logging.Nop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestStatusWithoutDatabase(t *testing.T) {
	probe := &stubProbe{}
	resp := getStatus(t, probe, Env{})

	assert.Equal(t, "✅ Running", resp.Backend)
	assert.Equal(t, "⚠️  Available but not initialized", resp.Database)
	assert.Equal(t, "❌ Not Set", resp.DatabaseURL)
	assert.Equal(t, "❌ Not Set", resp.DatabaseName)
	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Empty(t, resp.Collections)
	assert.False(t, probe.pingInvoked)
}

func TestStatusHealthyStore(t *testing.T) {
	names := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		names = append(names, fmt.Sprintf("c%02d", i))
	}
	resp := getStatus(t, &stubProbe{names: names}, Env{DatabaseURL: true, DatabaseName: true})

	assert.Equal(t, "✅ Connected & Working", resp.Database)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
	assert.Equal(t, "✅ Set", resp.DatabaseURL)
	assert.Equal(t, "✅ Set", resp.DatabaseName)
	assert.Len(t, resp.Collections, 10)
	assert.Equal(t, "stub", resp.Store)
}

func TestStatusPingFailure(t *testing.T) {
	err := errors.New(strings.Repeat("x", 80))
	resp := getStatus(t, &stubProbe{pingErr: err}, Env{DatabaseURL: true})

	assert.Equal(t, "❌ Error: "+strings.Repeat("x", 50), resp.Database)
	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", resp.DatabaseName)
}

func TestStatusCollectionsFailure(t *testing.T) {
	resp := getStatus(t, &stubProbe{collErr: errors.New("not authorized")}, Env{DatabaseURL: true})

	assert.Equal(t, "⚠️  Connected but Error: not authorized", resp.Database)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
}

func TestStatusWithMemoryStore(t *testing.T) {
	store := docstore.NewMemory()
	_, err := store.Insert(context.Background(), "demoevent", map[string]any{"type": "x"})
	require.NoError(t, err)

	resp := getStatus(t, store, Env{DatabaseURL: true})
	assert.Equal(t, []string{"demoevent"}, resp.Collections)
	assert.Equal(t, "memory", resp.Store)
}

func TestStatusAfterFallback(t *testing.T) {
	_, openErr := docstore.Open(context.Background(), "ftp://example.com/db", "cliqo")
	require.Error(t, openErr)

	probe := &stubProbe{}
	resp := getStatus(t, probe, Env{DatabaseURL: true, OpenErr: openErr})

	assert.False(t, probe.pingInvoked)
	assert.True(t, strings.HasPrefix(resp.Database, "❌ Error: docstore: unsupported"), resp.Database)
	assert.LessOrEqual(t, len([]rune(strings.TrimPrefix(resp.Database, "❌ Error: "))), maxErrorLen)
	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Empty(t, resp.Collections)
}

func TestRootEndpoints(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(&stubProbe{}, Env{}, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello", nil))
	assert.JSONEq(t, `{"message":"Hello from the backend API!"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello from")
}
