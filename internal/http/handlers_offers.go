package httpx

import (
	"errors"
	"net/http"

	"github.com/hirewire/hirewire/internal/domain/model"
	"github.com/hirewire/hirewire/internal/service"
)

// OfferHandlers provides HTTP handlers for job offer operations.
type OfferHandlers struct {
	Svc  *service.JobOfferService
	Bulk *service.BulkService
}

// CreateOffer handles POST /api/offers.
func (h *OfferHandlers) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobOfferRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	offer, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, offer)
}

// GetOffer handles GET /api/offers/{id}.
func (h *OfferHandlers) GetOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, offer)
}

// ListOffers handles GET /api/offers?employer_id=.
func (h *OfferHandlers) ListOffers(w http.ResponseWriter, r *http.Request) {
	employerID := r.URL.Query().Get("employer_id")
	if employerID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_query",
			Err:     errors.New("employer_id is required"),
		})
		return
	}

	offers, err := h.Svc.ListByEmployer(r.Context(), employerID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, offers)
}

// OfferSummary handles GET /api/offers/summary?employer_id=. The flags are
// recomputed over the current snapshot on every call.
func (h *OfferHandlers) OfferSummary(w http.ResponseWriter, r *http.Request) {
	employerID := r.URL.Query().Get("employer_id")
	if employerID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_query",
			Err:     errors.New("employer_id is required"),
		})
		return
	}

	summary, err := h.Svc.Summary(r.Context(), employerID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}

type updateOfferPayload struct {
	EmployerID string `json:"employer_id"`
	model.UpdateJobOfferRequest
}

// UpdateOffer handles PATCH /api/offers/{id}.
func (h *OfferHandlers) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	var payload updateOfferPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	offer, err := h.Svc.Update(r.Context(), r.PathValue("id"), payload.EmployerID, payload.UpdateJobOfferRequest)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, offer)
}

type setStatusPayload struct {
	EmployerID string `json:"employer_id"`
	Status     string `json:"status"`
}

// SetOfferStatus handles PUT /api/offers/{id}/status. Unknown status values
// are rejected at this boundary; raw strings never reach the state machine.
func (h *OfferHandlers) SetOfferStatus(w http.ResponseWriter, r *http.Request) {
	var payload setStatusPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	target, ok := model.ParseJobStatus(payload.Status)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("unknown status value"),
		})
		return
	}

	offer, err := h.Svc.SetStatus(r.Context(), r.PathValue("id"), payload.EmployerID, target)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, offer)
}

type bulkStatusPayload struct {
	IDs        []string `json:"ids"`
	EmployerID string   `json:"employer_id"`
	Action     string   `json:"action,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// BulkOfferStatus handles POST /api/offers/status. Callers name either a
// lifecycle action (pause, resume, conclude, reopen, delete) or a target
// status; per-id failures come back in failed_ids, never as a batch error.
func (h *OfferHandlers) BulkOfferStatus(w http.ResponseWriter, r *http.Request) {
	var payload bulkStatusPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	var (
		result model.BulkStatusResult
		err    error
	)
	switch {
	case payload.Action != "":
		action, ok := model.ParseOfferAction(payload.Action)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation",
				Err:     errors.New("unknown action value"),
			})
			return
		}
		result, err = h.Bulk.Apply(r.Context(), payload.IDs, payload.EmployerID, action)
	case payload.Status != "":
		target, ok := model.ParseJobStatus(payload.Status)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation",
				Err:     errors.New("unknown status value"),
			})
			return
		}
		result, err = h.Bulk.SetStatus(r.Context(), payload.IDs, payload.EmployerID, target)
	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("action or status is required"),
		})
		return
	}
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// DeleteOffer handles DELETE /api/offers/{id}?employer_id=.
func (h *OfferHandlers) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id"), r.URL.Query().Get("employer_id")); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
