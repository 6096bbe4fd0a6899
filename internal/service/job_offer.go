// Package service implements the lifecycle rules of the marketplace core on
// top of the repository ports.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hirewire/hirewire/internal/core"
	"github.com/hirewire/hirewire/internal/data"
	"github.com/hirewire/hirewire/internal/domain/authz"
	"github.com/hirewire/hirewire/internal/domain/model"
	apperrors "github.com/hirewire/hirewire/internal/errors"
)

const defaultOfferCacheTTL = 5 * time.Minute

// JobOfferServiceOptions groups dependencies for JobOfferService.
type JobOfferServiceOptions struct {
	Repo     core.JobOfferRepository // Required: job offer repository
	Cache    core.CacheRepository    // Optional: per-employer offer snapshot cache
	CacheTTL time.Duration           // Optional: snapshot TTL, defaults to 5m
	Logger   *slog.Logger            // Optional: structured logger
}

// JobOfferService enforces the job offer state machine and ownership rules.
//
// Transitions: open --pause--> paused, paused --resume--> open,
// open|paused --conclude--> closed, closed --reopen--> open. Anything else is
// an invalid transition. Every status write recomputes is_active atomically.
type JobOfferService struct {
	repo     core.JobOfferRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewJobOfferService constructs a new JobOfferService.
func NewJobOfferService(opts JobOfferServiceOptions) (*JobOfferService, error) {
	if opts.Repo == nil {
		return nil, errors.New("JobOfferRepository is required")
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultOfferCacheTTL
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "job_offer_service")
	}

	return &JobOfferService{
		repo:     opts.Repo,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}, nil
}

// MustNewJobOfferService constructs a new JobOfferService and panics on error.
// Use this when you're certain the options are valid (e.g., in main.go).
func MustNewJobOfferService(opts JobOfferServiceOptions) *JobOfferService {
	svc, err := NewJobOfferService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create JobOfferService: %v", err))
	}
	return svc
}

// Create publishes a new job offer for the employer. New offers start open
// and active.
func (s *JobOfferService) Create(
	ctx context.Context,
	req *model.CreateJobOfferRequest,
) (*model.JobOffer, error) {
	if req == nil {
		return nil, apperrors.Validation("create request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid job offer")
	}

	offer, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create job offer: %w", err)
	}

	s.invalidateSnapshot(ctx, offer.EmployerID)

	if s.logger != nil {
		s.logger.DebugContext(ctx, "job offer created",
			"id", offer.ID,
			"employer_id", offer.EmployerID,
			"status", offer.Status,
		)
	}
	return offer, nil
}

// GetByID returns a job offer by its ID.
func (s *JobOfferService) GetByID(ctx context.Context, id string) (*model.JobOffer, error) {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrOfferNotFound) {
			return nil, apperrors.NotFoundf("job offer %s not found", id)
		}
		return nil, fmt.Errorf("get job offer %s: %w", id, err)
	}
	return offer, nil
}

// ListByEmployer returns the employer's offers, newest first. When a cache is
// configured the snapshot is served read-through; cache failures degrade to
// the store and are never surfaced to the caller.
func (s *JobOfferService) ListByEmployer(
	ctx context.Context,
	employerID string,
) ([]*model.JobOffer, error) {
	if employerID == "" {
		return nil, apperrors.Validation("employer id is required")
	}

	if cached, ok := s.snapshotFromCache(ctx, employerID); ok {
		return cached, nil
	}

	offers, err := s.repo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("list job offers for employer %s: %w", employerID, err)
	}

	s.storeSnapshot(ctx, employerID, offers)
	return offers, nil
}

// Summary recomputes the derived selection flags over the employer's current
// offer snapshot.
func (s *JobOfferService) Summary(
	ctx context.Context,
	employerID string,
) (model.OfferSelectionSummary, error) {
	offers, err := s.ListByEmployer(ctx, employerID)
	if err != nil {
		return model.OfferSelectionSummary{}, err
	}
	return model.SummarizeOffers(offers), nil
}

// Update patches the descriptive fields of an offer owned by the employer.
// Status never moves through here.
func (s *JobOfferService) Update(
	ctx context.Context,
	id, employerID string,
	req model.UpdateJobOfferRequest,
) (*model.JobOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid job offer update")
	}

	offer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = authz.Authorize(employerID, offer.EmployerID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrOfferNotFound) {
			return nil, apperrors.NotFoundf("job offer %s not found", id)
		}
		return nil, fmt.Errorf("update job offer %s: %w", id, err)
	}

	s.invalidateSnapshot(ctx, updated.EmployerID)

	if s.logger != nil {
		s.logger.DebugContext(ctx, "job offer updated", "id", id)
	}
	return updated, nil
}

// SetStatus moves an offer to the target status through the state machine.
// The action is derived from the current status and the target; a move the
// transition table does not admit fails with InvalidTransition and leaves the
// offer untouched.
func (s *JobOfferService) SetStatus(
	ctx context.Context,
	id, employerID string,
	target model.JobStatus,
) (*model.JobOffer, error) {
	if !target.Valid() {
		return nil, apperrors.Validationf("invalid status %q", target)
	}

	offer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action := model.ActionForTarget(offer.Status, target)
	return s.transition(ctx, offer, employerID, action)
}

// ApplyAction applies a named lifecycle action to an offer. Delete is handled
// as a lifecycle action so bulk callers can fan out uniformly.
func (s *JobOfferService) ApplyAction(
	ctx context.Context,
	id, employerID string,
	action model.OfferAction,
) (*model.JobOffer, error) {
	if !action.Valid() {
		return nil, apperrors.Validationf("invalid action %q", action)
	}

	if action == model.ActionDelete {
		if err := s.Delete(ctx, id, employerID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	offer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, offer, employerID, action)
}

// transition authorizes and applies one state machine edge.
func (s *JobOfferService) transition(
	ctx context.Context,
	offer *model.JobOffer,
	employerID string,
	action model.OfferAction,
) (*model.JobOffer, error) {
	if err := authz.Authorize(employerID, offer.EmployerID); err != nil {
		return nil, err
	}

	next, ok := model.NextStatus(offer.Status, action)
	if !ok {
		return nil, apperrors.InvalidTransitionf(
			"cannot %s a %s job offer", action, offer.Status)
	}

	updated, err := s.repo.UpdateStatus(ctx, offer.ID, next)
	if err != nil {
		if errors.Is(err, data.ErrOfferNotFound) {
			return nil, apperrors.NotFoundf("job offer %s not found", offer.ID)
		}
		return nil, fmt.Errorf("update job offer status %s: %w", offer.ID, err)
	}

	s.invalidateSnapshot(ctx, updated.EmployerID)

	if s.logger != nil {
		s.logger.DebugContext(ctx, "job offer transitioned",
			"id", offer.ID,
			"action", action,
			"from", offer.Status,
			"to", updated.Status,
			"is_active", updated.IsActive,
		)
	}
	return updated, nil
}

// Delete removes an offer owned by the employer. Its applications cascade at
// the schema level.
func (s *JobOfferService) Delete(ctx context.Context, id, employerID string) error {
	offer, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = authz.Authorize(employerID, offer.EmployerID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete job offer %s: %w", id, err)
	}
	if !deleted {
		return apperrors.NotFoundf("job offer %s not found", id)
	}

	s.invalidateSnapshot(ctx, offer.EmployerID)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "job offer deleted", "id", id)
	}
	return nil
}

func snapshotKey(employerID string) string {
	return "offers:employer:" + employerID
}

func (s *JobOfferService) snapshotFromCache(
	ctx context.Context,
	employerID string,
) ([]*model.JobOffer, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, snapshotKey(employerID))
	if err != nil {
		if s.logger != nil {
			s.logger.DebugContext(ctx, "offer snapshot cache read failed", "error", err)
		}
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	var offers []*model.JobOffer
	if err := json.Unmarshal(raw, &offers); err != nil {
		if s.logger != nil {
			s.logger.DebugContext(ctx, "offer snapshot cache decode failed", "error", err)
		}
		return nil, false
	}
	return offers, true
}

func (s *JobOfferService) storeSnapshot(
	ctx context.Context,
	employerID string,
	offers []*model.JobOffer,
) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(offers)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, snapshotKey(employerID), raw, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.DebugContext(ctx, "offer snapshot cache write failed", "error", err)
	}
}

func (s *JobOfferService) invalidateSnapshot(ctx context.Context, employerID string) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, snapshotKey(employerID)); err != nil && s.logger != nil {
		s.logger.DebugContext(ctx, "offer snapshot cache invalidation failed", "error", err)
	}
}
