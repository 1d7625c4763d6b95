package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/qdm12/cfddns/internal/update"
)

func (h *handlers) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toStatusJSON(h.controller.Status()))
}

func (h *handlers) pause(w http.ResponseWriter, _ *http.Request) {
	err := h.controller.Pause()
	if err != nil {
		httpError(w, http.StatusConflict, err.Error())
		return
	}
	h.logger.Info("updater paused through the control server")
	writeJSON(w, http.StatusOK, toStatusJSON(h.controller.Status()))
}

func (h *handlers) resume(w http.ResponseWriter, _ *http.Request) {
	err := h.controller.Resume()
	if err != nil {
		httpError(w, http.StatusConflict, err.Error())
		return
	}
	h.logger.Info("updater resumed through the control server")
	writeJSON(w, http.StatusOK, toStatusJSON(h.controller.Status()))
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	const timeout = 2 * time.Minute
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	h.logger.Debug("forcing an update through the control server")
	_, err := h.controller.ForceUpdate(ctx)
	switch {
	case err == nil:
	case errors.Is(err, update.ErrPaused),
		errors.Is(err, update.ErrStopped),
		errors.Is(err, update.ErrNotRunning):
		httpError(w, http.StatusConflict, err.Error())
		return
	default:
		httpError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toStatusJSON(h.controller.Status()))
}
