//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minTitleLen       = 5
	minDescriptionLen = 20
	maxTitleLen       = 255
)

// JobStatus is the lifecycle status of a job offer.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// Valid reports whether the job status is supported.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusPaused, JobStatusClosed:
		return true
	default:
		return false
	}
}

// ParseJobStatus normalizes a status string and reports whether it is supported.
func ParseJobStatus(value string) (JobStatus, bool) {
	status := JobStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// JobType categorizes the engagement model of a job offer.
type JobType string

const (
	JobTypeFreelance JobType = "freelance"
	JobTypeFullTime  JobType = "full_time"
	JobTypePartTime  JobType = "part_time"
	JobTypeProject   JobType = "project"
)

// Valid reports whether the job type is supported.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFreelance, JobTypeFullTime, JobTypePartTime, JobTypeProject:
		return true
	default:
		return false
	}
}

// ParseJobType normalizes a job type string and reports whether it is supported.
func ParseJobType(value string) (JobType, bool) {
	t := JobType(strings.ToLower(strings.TrimSpace(value)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// LocationType describes where the work happens.
type LocationType string

const (
	LocationOnSite LocationType = "on_site"
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
)

// Valid reports whether the location type is supported.
func (l LocationType) Valid() bool {
	switch l {
	case LocationOnSite, LocationRemote, LocationHybrid:
		return true
	default:
		return false
	}
}

// ParseLocationType normalizes a location type string and reports whether it is supported.
func ParseLocationType(value string) (LocationType, bool) {
	l := LocationType(strings.ToLower(strings.TrimSpace(value)))
	if l.Valid() {
		return l, true
	}
	return "", false
}

// OfferAction is a lifecycle action requested against a job offer.
type OfferAction string

const (
	ActionPause    OfferAction = "pause"
	ActionResume   OfferAction = "resume"
	ActionConclude OfferAction = "conclude"
	ActionReopen   OfferAction = "reopen"
	ActionDelete   OfferAction = "delete"
)

// Valid reports whether the offer action is supported.
func (a OfferAction) Valid() bool {
	switch a {
	case ActionPause, ActionResume, ActionConclude, ActionReopen, ActionDelete:
		return true
	default:
		return false
	}
}

// ParseOfferAction normalizes an action string and reports whether it is supported.
func ParseOfferAction(value string) (OfferAction, bool) {
	a := OfferAction(strings.ToLower(strings.TrimSpace(value)))
	if a.Valid() {
		return a, true
	}
	return "", false
}

// RequiresConfirmation reports whether callers should confirm the action before
// submitting it. Destructive actions (delete, conclude) are confirmed at the
// boundary; the core never blocks on user input.
func (a OfferAction) RequiresConfirmation() bool {
	return a == ActionDelete || a == ActionConclude
}

// offerTransitions is the job offer state machine. Any (from, action) pair not
// present here is rejected.
var offerTransitions = map[JobStatus]map[OfferAction]JobStatus{
	JobStatusOpen: {
		ActionPause:    JobStatusPaused,
		ActionConclude: JobStatusClosed,
	},
	JobStatusPaused: {
		ActionResume:   JobStatusOpen,
		ActionConclude: JobStatusClosed,
	},
	JobStatusClosed: {
		ActionReopen: JobStatusOpen,
	},
}

// NextStatus returns the status reached by applying action to the current
// status. The second return is false when the state machine rejects the move.
func NextStatus(current JobStatus, action OfferAction) (JobStatus, bool) {
	next, ok := offerTransitions[current][action]
	return next, ok
}

// ActionForTarget derives the lifecycle action implied by moving from current
// to target. Resuming an already-open offer derives resume, which the
// transition table then rejects.
func ActionForTarget(current, target JobStatus) OfferAction {
	switch target {
	case JobStatusPaused:
		return ActionPause
	case JobStatusClosed:
		return ActionConclude
	case JobStatusOpen:
		if current == JobStatusClosed {
			return ActionReopen
		}
		return ActionResume
	default:
		return ""
	}
}

// IsActiveFor reports the is_active value matching a status. The two fields
// are always written together; this is the single source of that coupling.
func IsActiveFor(status JobStatus) bool {
	return status == JobStatusOpen
}

// JobOffer represents an employer-owned job posting.
type JobOffer struct {
	ID          string       `json:"id"                    db:"id"`
	EmployerID  string       `json:"employer_id"           db:"employer_id"`
	Title       string       `json:"title"                 db:"title"`
	Description string       `json:"description"           db:"description"`
	Category    string       `json:"category"              db:"category"`
	JobType     JobType      `json:"job_type"              db:"job_type"`
	Location    LocationType `json:"location_type"         db:"location_type"`
	City        string       `json:"city,omitempty"        db:"city"`
	State       string       `json:"state,omitempty"       db:"state"`
	BudgetMin   *float64     `json:"budget_min,omitempty"  db:"budget_min"`
	BudgetMax   *float64     `json:"budget_max,omitempty"  db:"budget_max"`
	StartDate   *time.Time   `json:"start_date,omitempty"  db:"start_date"`
	EndDate     *time.Time   `json:"end_date,omitempty"    db:"end_date"`
	Status      JobStatus    `json:"status"                db:"status"`
	IsActive    bool         `json:"is_active"             db:"is_active"`
	CreatedAt   time.Time    `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"            db:"updated_at"`
}

// CreateJobOfferRequest represents parameters to create a JobOffer.
type CreateJobOfferRequest struct {
	EmployerID  string       `json:"employer_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	JobType     JobType      `json:"job_type"`
	Location    LocationType `json:"location_type"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
	BudgetMin   *float64     `json:"budget_min,omitempty"`
	BudgetMax   *float64     `json:"budget_max,omitempty"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
}

// Validate validates CreateJobOfferRequest.
func (r *CreateJobOfferRequest) Validate() error {
	if strings.TrimSpace(r.EmployerID) == "" {
		return errors.New("employer_id is required")
	}
	title := strings.TrimSpace(r.Title)
	if utf8.RuneCountInString(title) < minTitleLen {
		return errors.New("title must be at least 5 characters")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Description)) < minDescriptionLen {
		return errors.New("description must be at least 20 characters")
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("category is required")
	}
	r.JobType = JobType(strings.ToLower(strings.TrimSpace(string(r.JobType))))
	if !r.JobType.Valid() {
		return errors.New("invalid job_type")
	}
	r.Location = LocationType(strings.ToLower(strings.TrimSpace(string(r.Location))))
	if !r.Location.Valid() {
		return errors.New("invalid location_type")
	}
	if r.BudgetMin != nil && r.BudgetMax != nil && *r.BudgetMin > *r.BudgetMax {
		return errors.New("budget_min cannot exceed budget_max")
	}
	return nil
}

// UpdateJobOfferRequest represents parameters to update a JobOffer. Status is
// deliberately absent; status moves only through lifecycle actions.
type UpdateJobOfferRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Category    *string       `json:"category,omitempty"`
	JobType     *JobType      `json:"job_type,omitempty"`
	Location    *LocationType `json:"location_type,omitempty"`
	City        *string       `json:"city,omitempty"`
	State       *string       `json:"state,omitempty"`
	BudgetMin   *float64      `json:"budget_min,omitempty"`
	BudgetMax   *float64      `json:"budget_max,omitempty"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
}

// HasUpdates reports whether any field is set in UpdateJobOfferRequest.
func (r *UpdateJobOfferRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.Category != nil ||
		r.JobType != nil || r.Location != nil ||
		r.City != nil || r.State != nil ||
		r.BudgetMin != nil || r.BudgetMax != nil ||
		r.StartDate != nil || r.EndDate != nil
}

// Validate validates UpdateJobOfferRequest, ensuring at least one field is set
// and values are sane.
func (r *UpdateJobOfferRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if utf8.RuneCountInString(title) < minTitleLen {
			return errors.New("title must be at least 5 characters")
		}
		if utf8.RuneCountInString(title) > maxTitleLen {
			return errors.New("title cannot exceed 255 characters")
		}
	}
	if r.Description != nil &&
		utf8.RuneCountInString(strings.TrimSpace(*r.Description)) < minDescriptionLen {
		return errors.New("description must be at least 20 characters")
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) == "" {
		return errors.New("category cannot be empty")
	}
	if r.JobType != nil {
		t := JobType(strings.ToLower(strings.TrimSpace(string(*r.JobType))))
		if !t.Valid() {
			return errors.New("invalid job_type")
		}
		*r.JobType = t
	}
	if r.Location != nil {
		l := LocationType(strings.ToLower(strings.TrimSpace(string(*r.Location))))
		if !l.Valid() {
			return errors.New("invalid location_type")
		}
		*r.Location = l
	}
	if r.BudgetMin != nil && r.BudgetMax != nil && *r.BudgetMin > *r.BudgetMax {
		return errors.New("budget_min cannot exceed budget_max")
	}
	return nil
}

// BulkStatusResult is the aggregate outcome of a bulk lifecycle operation.
// Partial application is an expected outcome, not a batch failure.
type BulkStatusResult struct {
	SucceededIDs []string `json:"succeeded_ids"`
	FailedIDs    []string `json:"failed_ids"`
}
