// Package testutil provides testing utilities and helpers for the hirewire marketplace core.
package testutil

import (
	"time"

	"github.com/hirewire/hirewire/internal/domain/model"
)

// OfferRequestBuilder provides a fluent interface for building CreateJobOfferRequest objects for testing.
type OfferRequestBuilder struct {
	req *model.CreateJobOfferRequest
}

// NewOfferRequest creates a new OfferRequestBuilder with sensible defaults.
func NewOfferRequest() *OfferRequestBuilder {
	return &OfferRequestBuilder{
		req: &model.CreateJobOfferRequest{
			EmployerID:  "employer-1",
			Title:       "Senior Backend Engineer",
			Description: "Design and operate the marketplace backend services.",
			Category:    "engineering",
			JobType:     model.JobTypeFullTime,
			Location:    model.LocationRemote,
		},
	}
}

// WithEmployer sets the employer id.
func (b *OfferRequestBuilder) WithEmployer(employerID string) *OfferRequestBuilder {
	b.req.EmployerID = employerID
	return b
}

// WithTitle sets the offer title.
func (b *OfferRequestBuilder) WithTitle(title string) *OfferRequestBuilder {
	b.req.Title = title
	return b
}

// WithDescription sets the offer description.
func (b *OfferRequestBuilder) WithDescription(description string) *OfferRequestBuilder {
	b.req.Description = description
	return b
}

// WithCategory sets the offer category.
func (b *OfferRequestBuilder) WithCategory(category string) *OfferRequestBuilder {
	b.req.Category = category
	return b
}

// WithJobType sets the job type.
func (b *OfferRequestBuilder) WithJobType(jobType model.JobType) *OfferRequestBuilder {
	b.req.JobType = jobType
	return b
}

// WithLocation sets the location type.
func (b *OfferRequestBuilder) WithLocation(location model.LocationType) *OfferRequestBuilder {
	b.req.Location = location
	return b
}

// WithCity sets the city and state.
func (b *OfferRequestBuilder) WithCity(city, state string) *OfferRequestBuilder {
	b.req.City = city
	b.req.State = state
	return b
}

// WithBudget sets the budget range.
func (b *OfferRequestBuilder) WithBudget(budgetMin, budgetMax float64) *OfferRequestBuilder {
	b.req.BudgetMin = &budgetMin
	b.req.BudgetMax = &budgetMax
	return b
}

// WithDates sets the start and end dates.
func (b *OfferRequestBuilder) WithDates(start, end time.Time) *OfferRequestBuilder {
	b.req.StartDate = &start
	b.req.EndDate = &end
	return b
}

// Build returns the constructed request.
func (b *OfferRequestBuilder) Build() *model.CreateJobOfferRequest {
	return b.req
}

// ApplyRequestBuilder provides a fluent interface for building ApplyRequest objects for testing.
type ApplyRequestBuilder struct {
	req *model.ApplyRequest
}

// NewApplyRequest creates a new ApplyRequestBuilder with sensible defaults.
func NewApplyRequest(jobOfferID string) *ApplyRequestBuilder {
	return &ApplyRequestBuilder{
		req: &model.ApplyRequest{
			JobOfferID:  jobOfferID,
			CandidateID: "candidate-1",
		},
	}
}

// WithCandidate sets the candidate id.
func (b *ApplyRequestBuilder) WithCandidate(candidateID string) *ApplyRequestBuilder {
	b.req.CandidateID = candidateID
	return b
}

// WithMessage sets the cover message.
func (b *ApplyRequestBuilder) WithMessage(message string) *ApplyRequestBuilder {
	b.req.Message = &message
	return b
}

// WithCounterProposal sets the candidate's counter proposal.
func (b *ApplyRequestBuilder) WithCounterProposal(amount float64) *ApplyRequestBuilder {
	b.req.CounterProposal = &amount
	return b
}

// Build returns the constructed request.
func (b *ApplyRequestBuilder) Build() *model.ApplyRequest {
	return b.req
}
