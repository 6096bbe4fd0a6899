package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hirewire/hirewire/internal/core"
	"github.com/hirewire/hirewire/internal/data"
	"github.com/hirewire/hirewire/internal/domain/authz"
	"github.com/hirewire/hirewire/internal/domain/model"
	apperrors "github.com/hirewire/hirewire/internal/errors"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Repo   core.ApplicationRepository // Required: application repository
	Offers core.JobOfferRepository    // Required: parent offer lookups
	Logger *slog.Logger               // Optional: structured logger
}

// ApplicationService enforces the application state machine.
//
// States: pending (initial), accepted, rejected, withdrawn (all terminal).
// Applications exist only against open offers, at most one per candidate and
// offer. The employer owning the parent offer decides accepted/rejected; the
// candidate may withdraw while pending.
type ApplicationService struct {
	repo   core.ApplicationRepository
	offers core.JobOfferRepository
	logger *slog.Logger
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) (*ApplicationService, error) {
	if opts.Repo == nil {
		return nil, errors.New("ApplicationRepository is required")
	}
	if opts.Offers == nil {
		return nil, errors.New("JobOfferRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "application_service")
	}

	return &ApplicationService{
		repo:   opts.Repo,
		offers: opts.Offers,
		logger: logger,
	}, nil
}

// MustNewApplicationService constructs a new ApplicationService and panics on error.
func MustNewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	svc, err := NewApplicationService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create ApplicationService: %v", err))
	}
	return svc
}

// Apply files a candidate's application against an open offer. The guards run
// in order: offer must exist, offer must be open, candidate must not have
// applied before. Message and counter proposal are stored verbatim.
func (s *ApplicationService) Apply(
	ctx context.Context,
	req *model.ApplyRequest,
) (*model.JobApplication, error) {
	if req == nil {
		return nil, apperrors.Validation("apply request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid application")
	}

	offer, err := s.offers.GetByID(ctx, req.JobOfferID)
	if err != nil {
		if errors.Is(err, data.ErrOfferNotFound) {
			return nil, apperrors.NotFoundf("job offer %s not found", req.JobOfferID)
		}
		return nil, fmt.Errorf("load job offer %s: %w", req.JobOfferID, err)
	}

	if offer.Status != model.JobStatusOpen {
		return nil, apperrors.JobClosed("job offer is not accepting applications")
	}

	exists, err := s.repo.Exists(ctx, req.JobOfferID, req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return nil, apperrors.DuplicateApplication("candidate has already applied to this job offer")
	}

	app, err := s.repo.Create(ctx, req)
	if err != nil {
		// The unique index closes the check-then-insert race; a concurrent
		// duplicate surfaces here with the same error code.
		return nil, fmt.Errorf("create application: %w", err)
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "application filed",
			"id", app.ID,
			"job_offer_id", app.JobOfferID,
			"candidate_id", app.CandidateID,
			"counter_proposal", app.CounterProposal != nil,
		)
	}
	return app, nil
}

// UpdateStatus records the employer's decision on a pending application.
// Target must be accepted or rejected; only the owner of the parent offer may
// decide, and only while the application is pending.
func (s *ApplicationService) UpdateStatus(
	ctx context.Context,
	applicationID, employerID string,
	target model.ApplicationStatus,
) (*model.JobApplication, error) {
	if !model.DecisionStatus(target) {
		return nil, apperrors.Validationf("target status must be accepted or rejected, got %q", target)
	}

	app, err := s.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	offer, err := s.offers.GetByID(ctx, app.JobOfferID)
	if err != nil {
		if errors.Is(err, data.ErrOfferNotFound) {
			return nil, apperrors.NotFoundf("job offer %s not found", app.JobOfferID)
		}
		return nil, fmt.Errorf("load job offer %s: %w", app.JobOfferID, err)
	}

	if err = authz.Authorize(employerID, offer.EmployerID); err != nil {
		return nil, err
	}

	if app.Status != model.ApplicationPending {
		return nil, apperrors.InvalidTransitionf(
			"application is already %s", app.Status)
	}

	updated, err := s.repo.UpdateStatus(ctx, applicationID, target)
	if err != nil {
		return nil, fmt.Errorf("update application status %s: %w", applicationID, err)
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "application decided",
			"id", applicationID,
			"status", updated.Status,
		)
	}
	return updated, nil
}

// Withdraw lets the candidate retract a pending application. Withdrawn is
// terminal; there is no way back to pending.
func (s *ApplicationService) Withdraw(
	ctx context.Context,
	applicationID, candidateID string,
) (*model.JobApplication, error) {
	app, err := s.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err = authz.Authorize(candidateID, app.CandidateID); err != nil {
		return nil, err
	}

	if app.Status != model.ApplicationPending {
		return nil, apperrors.InvalidTransitionf(
			"application is already %s", app.Status)
	}

	updated, err := s.repo.UpdateStatus(ctx, applicationID, model.ApplicationWithdrawn)
	if err != nil {
		return nil, fmt.Errorf("withdraw application %s: %w", applicationID, err)
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "application withdrawn", "id", applicationID)
	}
	return updated, nil
}

// HasApplied reports whether the candidate already applied to the offer.
func (s *ApplicationService) HasApplied(
	ctx context.Context,
	jobOfferID, candidateID string,
) (bool, error) {
	exists, err := s.repo.Exists(ctx, jobOfferID, candidateID)
	if err != nil {
		return false, fmt.Errorf("check application exists: %w", err)
	}
	return exists, nil
}

// GetByPair returns the candidate's application against the offer, or nil
// when none exists.
func (s *ApplicationService) GetByPair(
	ctx context.Context,
	jobOfferID, candidateID string,
) (*model.JobApplication, error) {
	app, err := s.repo.GetByPair(ctx, jobOfferID, candidateID)
	if err != nil {
		if errors.Is(err, data.ErrApplicationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application by pair: %w", err)
	}
	return app, nil
}

// ListCandidates returns all applications for an offer joined with the
// applicants' opaque profile blobs. Only the offer's owner may list them.
func (s *ApplicationService) ListCandidates(
	ctx context.Context,
	jobOfferID, employerID string,
) ([]*model.ApplicationWithCandidate, error) {
	offer, err := s.offers.GetByID(ctx, jobOfferID)
	if err != nil {
		if errors.Is(err, data.ErrOfferNotFound) {
			return nil, apperrors.NotFoundf("job offer %s not found", jobOfferID)
		}
		return nil, fmt.Errorf("load job offer %s: %w", jobOfferID, err)
	}

	if err = authz.Authorize(employerID, offer.EmployerID); err != nil {
		return nil, err
	}

	apps, err := s.repo.ListByOffer(ctx, jobOfferID)
	if err != nil {
		return nil, fmt.Errorf("list applications for offer %s: %w", jobOfferID, err)
	}
	return apps, nil
}

func (s *ApplicationService) getApplication(
	ctx context.Context,
	id string,
) (*model.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrApplicationNotFound) {
			return nil, apperrors.NotFoundf("application %s not found", id)
		}
		return nil, fmt.Errorf("get application %s: %w", id, err)
	}
	return app, nil
}
