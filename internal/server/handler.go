package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	controller Controller
	logger     Logger
}

func newHandler(controller Controller, logger Logger) http.Handler {
	handlers := &handlers{
		controller: controller,
		logger:     logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.CleanPath, middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", handlers.status)
		r.Post("/pause", handlers.pause)
		r.Post("/resume", handlers.resume)
		r.Post("/update", handlers.update)
	})

	return router
}
