package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router. Middleware order, outermost first:
// tracing, trace id, access log, metrics, recovery, gzip, rate limit.
// Recovery sits inside the access log and metrics so a panic is still
// logged and counted as a 500.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTracing, h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.HTTPMiddleware)
	}
	router.Use(h.withRecovery, h.withGZip, h.withRateLimit)

	// operational routes, answered without the envelope
	router.Get("/health", h.wrap(h.health))
	router.Get("/openapi.yaml", h.serveOpenAPIYAML)
	router.Get("/openapi.json", h.serveOpenAPIJSON)
	router.Get("/docs", h.serveDocs)
	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.Get("/", h.wrap(h.hello))

	router.Route("/v1", func(r chi.Router) {
		r.Get("/", h.wrap(h.hello))
		r.Get("/health", h.wrap(h.health))
		r.Get("/docs", h.serveDocs)
		if h.metrics != nil {
			r.Handle("/metrics", h.metrics.Handler())
		}

		// routes without authorization
		r.Post("/auth/login", h.wrap(h.login))
		r.Post("/users", h.wrap(h.createUser))
		r.Get("/users", h.wrap(h.listUsers))

		// routes with authorization
		r.With(h.auth).Get("/users/me", h.wrap(h.me))

		r.Get("/users/{id}", h.wrap(h.getUser))
	})

	router.NotFound(h.notFound)
	// unsupported methods are answered like unknown routes
	router.MethodNotAllowed(h.notFound)

	return router
}
