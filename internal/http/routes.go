package httpx

import (
	"net/http"

	"github.com/hirewire/hirewire/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Offers       *service.JobOfferService
	Applications *service.ApplicationService
	Bulk         *service.BulkService
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	offerHandlers := &OfferHandlers{Svc: services.Offers, Bulk: services.Bulk}
	applicationHandlers := &ApplicationHandlers{Svc: services.Applications}

	registerOfferRoutes(mux, offerHandlers)
	registerApplicationRoutes(mux, applicationHandlers)
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	return mux
}

func registerOfferRoutes(mux *http.ServeMux, h *OfferHandlers) {
	mux.HandleFunc("POST /api/offers", h.CreateOffer)
	mux.HandleFunc("GET /api/offers", h.ListOffers)
	mux.HandleFunc("GET /api/offers/summary", h.OfferSummary)
	mux.HandleFunc("POST /api/offers/status", h.BulkOfferStatus)
	mux.HandleFunc("GET /api/offers/{id}", h.GetOffer)
	mux.HandleFunc("PATCH /api/offers/{id}", h.UpdateOffer)
	mux.HandleFunc("PUT /api/offers/{id}/status", h.SetOfferStatus)
	mux.HandleFunc("DELETE /api/offers/{id}", h.DeleteOffer)
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers) {
	mux.HandleFunc("POST /api/offers/{id}/applications", h.Apply)
	mux.HandleFunc("GET /api/offers/{id}/applications", h.ListCandidates)
	mux.HandleFunc("GET /api/offers/{id}/applications/{candidateID}", h.GetApplication)
	mux.HandleFunc("PUT /api/applications/{id}/status", h.UpdateApplicationStatus)
	mux.HandleFunc("POST /api/applications/{id}/withdraw", h.WithdrawApplication)
}
