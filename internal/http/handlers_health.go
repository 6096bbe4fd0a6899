package httpx

import "net/http"

// healthHandler reports process liveness. It intentionally touches no
// backing store so a degraded database cannot flap the health check.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
