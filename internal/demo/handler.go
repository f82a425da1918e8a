package demo

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nalin-pixel/cliqo-receptionist/pkg/logging"
)

type Handler struct {
	svc    Service
	logger *logging.Logger
}

func NewHandler(svc Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{svc: svc, logger: logger}
}

// Start handles POST /demo/start.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Start(r.Context(), req)
	h.respond(w, resp, err)
}

// Message handles POST /demo/message.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Message(r.Context(), req)
	h.respond(w, resp, err)
}

// Event handles POST /demo/event.
func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.LogEvent(r.Context(), req)
	h.respond(w, resp, err)
}

// Book handles POST /demo/book.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Book(r.Context(), req)
	h.respond(w, resp, err)
}

// Escalate handles POST /demo/escalate.
func (h *Handler) Escalate(w http.ResponseWriter, r *http.Request) {
	var req EscalateRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Escalate(r.Context(), req)
	h.respond(w, resp, err)
}

// Lead handles POST /demo/lead.
func (h *Handler) Lead(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.CaptureLead(r.Context(), req)
	h.respond(w, resp, err)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		h.logger.Debug("demo: invalid json", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: "invalid json"})
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, body any, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, body)
	case errors.Is(err, ErrInvalidSlot):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid slot format"})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: err.Error()})
	default:
		h.logger.Error("demo: unexpected error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "internal error"})
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
