package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Init wires the router.
//
// The websocket live feed is registered in its own group without the
// logging and gzip middleware: both wrap the response writer and would
// break the connection hijack performed by the upgrader.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"Authorization", "X-Trace-ID"},
	}).Handler)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withLogging, withGZip)

		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withLogging, withGZip, h.auth)

		r.Get("/api/feed", h.getFeed)
		r.Post("/api/comment", h.postComment)
		r.Put("/api/profile/name", h.updateDisplayName)
		r.Put("/api/profile/color", h.updateColor)
		r.Put("/api/profile/password", h.changePassword)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/feed/live", h.liveFeed)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
