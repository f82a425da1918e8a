package demo

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/demo", func(r chi.Router) {
		r.Post("/start", h.Start)
		r.Post("/message", h.Message)
		r.Post("/event", h.Event)
		r.Post("/book", h.Book)
		r.Post("/escalate", h.Escalate)
		r.Post("/lead", h.Lead)
	})
}
