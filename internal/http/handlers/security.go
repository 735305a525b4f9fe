package handlers

import (
	"net/http"

	apierrors "blogger-platform/internal/errors"
	"blogger-platform/internal/http/middleware"

	"github.com/go-chi/chi/v5"
)

// Devices — GET /security/devices (за refresh-guard-ом).
// Возвращает активные девайс-сессии пользователя.
func (h *Handlers) Devices(w http.ResponseWriter, r *http.Request) {
	auth := middleware.AuthFrom(r.Context())

	views, err := h.svc.ActiveDevices(r.Context(), auth.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

// TerminateOtherDevices — DELETE /security/devices (за refresh-guard-ом).
// Завершает все сессии пользователя, кроме текущей. Успех: 204.
func (h *Handlers) TerminateOtherDevices(w http.ResponseWriter, r *http.Request) {
	auth := middleware.AuthFrom(r.Context())

	if _, err := h.svc.TerminateOtherDevices(r.Context(), auth); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TerminateDevice — DELETE /security/devices/{deviceId} (за refresh-guard-ом).
// 404 для несуществующей сессии, 403 для чужой, 204 при успехе.
func (h *Handlers) TerminateDevice(w http.ResponseWriter, r *http.Request) {
	auth := middleware.AuthFrom(r.Context())

	deviceID := chi.URLParam(r, "deviceId")
	if deviceID == "" {
		apierrors.WriteBadRequest(w, r)
		return
	}

	if err := h.svc.TerminateDevice(r.Context(), auth, deviceID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
