package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nalin-pixel/cliqo-receptionist/pkg/logging"
)

const (
	maxCollections = 10
	maxErrorLen    = 50
	probeTimeout   = 3 * time.Second
)

// Probe is the read-only view of the document store used for diagnostics.
type Probe interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
	Name() string
}

// Env says which database settings are present. Values are never reported.
// OpenErr is set when the configured database could not be opened and the
// process fell back to another store.
type Env struct {
	DatabaseURL  bool
	DatabaseName bool
	OpenErr      error
}

type Handler struct {
	probe  Probe
	env    Env
	logger *logging.Logger
}

func NewHandler(probe Probe, env Env, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{probe: probe, env: env, logger: logger}
}

type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Store            string   `json:"store"`
	Collections      []string `json:"collections"`
}

// Status handles GET /test. The process is up if this answers; store health
// is reported as data, never as an error status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setOrNot(h.env.DatabaseURL),
		DatabaseName:     setOrNot(h.env.DatabaseName),
		ConnectionStatus: "Not Connected",
		Store:            h.probe.Name(),
		Collections:      []string{},
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	switch {
	case !h.env.DatabaseURL:
		resp.Database = "⚠️  Available but not initialized"
	case h.env.OpenErr != nil:
		resp.Database = "❌ Error: " + truncate(h.env.OpenErr.Error(), maxErrorLen)
	default:
		if err := h.probe.Ping(ctx); err != nil {
			h.logger.Warn("health: store ping failed", "store", resp.Store, "error", err)
			resp.Database = "❌ Error: " + truncate(err.Error(), maxErrorLen)
			break
		}
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"

		names, err := h.probe.Collections(ctx)
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorLen)
			break
		}
		if len(names) > maxCollections {
			names = names[:maxCollections]
		}
		if names != nil {
			resp.Collections = names
		}
		resp.Database = "✅ Connected & Working"
	}

	writeJSON(w, resp)
}

func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"message": "Hello from the demo receptionist backend!"})
}

func (h *Handler) Hello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"message": "Hello from the backend API!"})
}

func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func setOrNot(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
