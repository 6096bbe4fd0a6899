package httpx

import (
	"errors"
	"net/http"

	"github.com/hirewire/hirewire/internal/domain/model"
	"github.com/hirewire/hirewire/internal/service"
)

// ApplicationHandlers provides HTTP handlers for job application operations.
type ApplicationHandlers struct {
	Svc *service.ApplicationService
}

// Apply handles POST /api/offers/{id}/applications.
func (h *ApplicationHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	var req model.ApplyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.JobOfferID = r.PathValue("id")

	app, err := h.Svc.Apply(r.Context(), &req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, app)
}

// ListCandidates handles GET /api/offers/{id}/applications?employer_id=.
func (h *ApplicationHandlers) ListCandidates(w http.ResponseWriter, r *http.Request) {
	employerID := r.URL.Query().Get("employer_id")
	if employerID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_query",
			Err:     errors.New("employer_id is required"),
		})
		return
	}

	apps, err := h.Svc.ListCandidates(r.Context(), r.PathValue("id"), employerID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}

type applicationLookup struct {
	HasApplied  bool                 `json:"has_applied"`
	Application *model.JobApplication `json:"application"`
}

// GetApplication handles GET /api/offers/{id}/applications/{candidateID}.
// A missing application is not an error; the body carries has_applied false
// with a null application.
func (h *ApplicationHandlers) GetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.Svc.GetByPair(r.Context(), r.PathValue("id"), r.PathValue("candidateID"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, applicationLookup{HasApplied: app != nil, Application: app})
}

type applicationDecisionPayload struct {
	EmployerID string `json:"employer_id"`
	Status     string `json:"status"`
}

// UpdateApplicationStatus handles PUT /api/applications/{id}/status. Only the
// employer decisions accepted and rejected pass this boundary.
func (h *ApplicationHandlers) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var payload applicationDecisionPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	status, ok := model.ParseApplicationStatus(payload.Status)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("unknown status value"),
		})
		return
	}

	app, err := h.Svc.UpdateStatus(r.Context(), r.PathValue("id"), payload.EmployerID, status)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}

type withdrawPayload struct {
	CandidateID string `json:"candidate_id"`
}

// WithdrawApplication handles POST /api/applications/{id}/withdraw.
func (h *ApplicationHandlers) WithdrawApplication(w http.ResponseWriter, r *http.Request) {
	var payload withdrawPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	app, err := h.Svc.Withdraw(r.Context(), r.PathValue("id"), payload.CandidateID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}
