// Package core defines the repository interfaces (ports) between the service
// layer and the data layer. Services depend on these contracts, never on
// concrete implementations.
package core

import (
	"context"
	"time"

	"github.com/hirewire/hirewire/internal/domain/model"
)

// JobOfferRepository defines the interface for job offer data operations.
// Status writes recompute is_active in the same statement; the two columns
// are never updated independently.
type JobOfferRepository interface {
	Create(ctx context.Context, req *model.CreateJobOfferRequest) (*model.JobOffer, error)
	GetByID(ctx context.Context, id string) (*model.JobOffer, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*model.JobOffer, error)
	Update(ctx context.Context, id string, req model.UpdateJobOfferRequest) (*model.JobOffer, error)
	UpdateStatus(ctx context.Context, id string, status model.JobStatus) (*model.JobOffer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ApplicationRepository defines the interface for job application data
// operations. The store enforces at most one application per
// (job_offer_id, candidate_id) pair.
type ApplicationRepository interface {
	Create(ctx context.Context, req *model.ApplyRequest) (*model.JobApplication, error)
	GetByID(ctx context.Context, id string) (*model.JobApplication, error)
	GetByPair(ctx context.Context, jobOfferID, candidateID string) (*model.JobApplication, error)
	ListByOffer(ctx context.Context, jobOfferID string) ([]*model.ApplicationWithCandidate, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.JobApplication, error)
	Exists(ctx context.Context, jobOfferID, candidateID string) (bool, error)
}

// CacheRepository defines the interface for byte-oriented cache operations.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}
