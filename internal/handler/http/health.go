package http

import (
	"net/http"

	"github.com/mep-tools/bracket-tool/internal/utils"
)

// health always answers 200 while the process is serving; the database
// state is reported in the body.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Health(r.Context())
	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
