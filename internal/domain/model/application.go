package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ApplicationStatus is the lifecycle status of a job application.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

// Valid reports whether the application status is supported.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status admits no further transitions.
// Withdrawn is terminal: there is no way back to pending.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus normalizes a status string and reports whether it is supported.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// DecisionStatus reports whether the status is a valid employer decision
// target for a pending application.
func DecisionStatus(s ApplicationStatus) bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// JobApplication is a candidate's request against one job offer. At most one
// application exists per (job_offer_id, candidate_id) pair.
type JobApplication struct {
	ID              string            `json:"id"                         db:"id"`
	JobOfferID      string            `json:"job_offer_id"               db:"job_offer_id"`
	CandidateID     string            `json:"candidate_id"               db:"candidate_id"`
	Status          ApplicationStatus `json:"status"                     db:"status"`
	Message         *string           `json:"message,omitempty"          db:"message"`
	CounterProposal *float64          `json:"counter_proposal,omitempty" db:"counter_proposal"`
	CreatedAt       time.Time         `json:"created_at"                 db:"created_at"`
}

// ApplicationWithCandidate joins an application with the applicant's profile.
// Profile fields are opaque to this core; the blob is passed through verbatim.
type ApplicationWithCandidate struct {
	JobApplication
	CandidateProfile json.RawMessage `json:"candidate_profile,omitempty" db:"candidate_profile"`
}

// ApplyRequest represents parameters to apply to a job offer.
type ApplyRequest struct {
	JobOfferID      string   `json:"job_offer_id"`
	CandidateID     string   `json:"candidate_id"`
	Message         *string  `json:"message,omitempty"`
	CounterProposal *float64 `json:"counter_proposal,omitempty"`
}

// Validate validates ApplyRequest. Message and counter proposal are stored
// verbatim; the only constraint is that they are present when intended.
func (r *ApplyRequest) Validate() error {
	if strings.TrimSpace(r.JobOfferID) == "" {
		return errors.New("job_offer_id is required")
	}
	if strings.TrimSpace(r.CandidateID) == "" {
		return errors.New("candidate_id is required")
	}
	return nil
}
