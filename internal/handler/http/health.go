package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// health reports process liveness. It deliberately does not touch the
// database: a degraded storage backend surfaces through request errors,
// not through the liveness probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": app.MsgStatusOK}, http.StatusOK)
}
