package health

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Root)
	r.Get("/api/hello", h.Hello)
	r.Get("/ping", h.Ping)
	r.Get("/test", h.Status)
}
