package health

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handler struct {
	statusGetter StatusGetter
	logger       Logger
}

func newHandler(statusGetter StatusGetter, logger Logger) http.Handler {
	h := &handler{
		statusGetter: statusGetter,
		logger:       logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/", h.getHealth)
	return router
}

func (h *handler) getHealth(w http.ResponseWriter, _ *http.Request) {
	report := newReport(h.statusGetter.Status())

	status := http.StatusOK
	if !report.Healthy {
		h.logger.Warn("unhealthy: " + report.Error)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}
