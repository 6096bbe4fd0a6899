package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hirewire/hirewire/internal/domain/model"
	apperrors "github.com/hirewire/hirewire/internal/errors"
)

const defaultBulkConcurrency = 8

// BulkServiceOptions groups dependencies for BulkService.
type BulkServiceOptions struct {
	Offers      *JobOfferService // Required: single-item lifecycle operations
	Concurrency int              // Optional: fan-out bound, defaults to 8
	Logger      *slog.Logger     // Optional: structured logger
}

// BulkService fans one lifecycle action out over many job offers. Each id is
// an independent best-effort operation: a failed id lands in FailedIDs and
// never aborts the batch. There is no cross-row transaction; partial
// application is an expected outcome.
type BulkService struct {
	offers      *JobOfferService
	concurrency int
	logger      *slog.Logger
}

// NewBulkService constructs a new BulkService.
func NewBulkService(opts BulkServiceOptions) (*BulkService, error) {
	if opts.Offers == nil {
		return nil, errors.New("JobOfferService is required")
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBulkConcurrency
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "bulk_service")
	}

	return &BulkService{
		offers:      opts.Offers,
		concurrency: concurrency,
		logger:      logger,
	}, nil
}

// MustNewBulkService constructs a new BulkService and panics on error.
func MustNewBulkService(opts BulkServiceOptions) *BulkService {
	svc, err := NewBulkService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create BulkService: %v", err))
	}
	return svc
}

// Apply runs one lifecycle action against every id concurrently and merges
// the per-id outcomes after all complete. Results land in per-index slots;
// no accumulator is shared between workers. An id whose current state rejects
// the transition counts as failed, even though callers are expected to
// pre-filter their selection.
func (s *BulkService) Apply(
	ctx context.Context,
	ids []string,
	employerID string,
	action model.OfferAction,
) (model.BulkStatusResult, error) {
	if len(ids) == 0 {
		return model.BulkStatusResult{
			SucceededIDs: []string{},
			FailedIDs:    []string{},
		}, nil
	}
	if !action.Valid() {
		return model.BulkStatusResult{}, apperrors.Validationf("invalid action %q", action)
	}

	outcomes := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			_, err := s.offers.ApplyAction(gctx, id, employerID, action)
			outcomes[i] = err
			// Per-id failures are recorded, never returned: returning an
			// error would cancel the rest of the batch.
			return nil
		})
	}
	// Wait never reports an error here; workers always return nil.
	_ = g.Wait()

	result := model.BulkStatusResult{
		SucceededIDs: make([]string, 0, len(ids)),
		FailedIDs:    make([]string, 0, len(ids)),
	}
	for i, id := range ids {
		if outcomes[i] != nil {
			result.FailedIDs = append(result.FailedIDs, id)
			if s.logger != nil {
				s.logger.DebugContext(ctx, "bulk item failed",
					"id", id,
					"action", action,
					"error", outcomes[i],
				)
			}
			continue
		}
		result.SucceededIDs = append(result.SucceededIDs, id)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "bulk action applied",
			"action", action,
			"total", len(ids),
			"succeeded", len(result.SucceededIDs),
			"failed", len(result.FailedIDs),
		)
	}
	return result, nil
}

// SetStatus applies the action matching a target status over many ids.
// Targets map to actions the way single-item SetStatus derives them, with the
// current status of each offer consulted independently.
func (s *BulkService) SetStatus(
	ctx context.Context,
	ids []string,
	employerID string,
	target model.JobStatus,
) (model.BulkStatusResult, error) {
	if !target.Valid() {
		return model.BulkStatusResult{}, apperrors.Validationf("invalid status %q", target)
	}

	if len(ids) == 0 {
		return model.BulkStatusResult{
			SucceededIDs: []string{},
			FailedIDs:    []string{},
		}, nil
	}

	outcomes := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			_, err := s.offers.SetStatus(gctx, id, employerID, target)
			outcomes[i] = err
			return nil
		})
	}
	_ = g.Wait()

	result := model.BulkStatusResult{
		SucceededIDs: make([]string, 0, len(ids)),
		FailedIDs:    make([]string, 0, len(ids)),
	}
	for i, id := range ids {
		if outcomes[i] != nil {
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.SucceededIDs = append(result.SucceededIDs, id)
	}
	return result, nil
}
