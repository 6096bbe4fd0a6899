package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hirewire/hirewire/internal/data/pgxutil"
	"github.com/hirewire/hirewire/internal/domain/model"
	apperrors "github.com/hirewire/hirewire/internal/errors"
)

// ApplicationRepo provides database operations for job applications. The
// unique index on (job_offer_id, candidate_id) backs the one-application-per-
// candidate invariant; violations surface as duplicate_application errors.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with real time provider.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates a new ApplicationRepo with a
// custom time provider (useful for tests).
func NewApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: tp}
}

const applicationColumns = `id, job_offer_id, candidate_id, status, message, counter_proposal, created_at`

const (
	applicationInsertQuery = `
		INSERT INTO job_applications (
			id, job_offer_id, candidate_id, status, message, counter_proposal, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING ` + applicationColumns

	applicationGetByIDQuery = `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE id = $1`

	applicationGetByPairQuery = `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE job_offer_id = $1 AND candidate_id = $2`

	applicationUpdateStatusQuery = `
		UPDATE job_applications
		SET status = $2
		WHERE id = $1
		RETURNING ` + applicationColumns

	// Candidate profile fields are opaque to the core; the jsonb blob is
	// passed through as-is.
	applicationListByOfferQuery = `
		SELECT a.id, a.job_offer_id, a.candidate_id, a.status, a.message, a.counter_proposal,
		       a.created_at, p.profile AS candidate_profile
		FROM job_applications a
		LEFT JOIN candidate_profiles p ON p.candidate_id = a.candidate_id
		WHERE a.job_offer_id = $1
		ORDER BY a.created_at ASC`
)

// Create inserts a new application with status pending. Message and counter
// proposal are stored verbatim.
func (r *ApplicationRepo) Create(
	ctx context.Context,
	req *model.ApplyRequest,
) (*model.JobApplication, error) {
	if req == nil {
		return nil, errors.New("apply request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid application")
	}

	var out model.JobApplication
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicationInsertQuery,
			uuid.NewString(),
			strings.TrimSpace(req.JobOfferID),
			strings.TrimSpace(req.CandidateID),
			model.ApplicationPending,
			req.Message,
			req.CounterProposal,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*model.JobApplication, error) {
	return r.getByQuery(ctx, applicationGetByIDQuery, "get application by id", id)
}

// GetByPair retrieves the application a candidate filed against an offer.
func (r *ApplicationRepo) GetByPair(
	ctx context.Context,
	jobOfferID, candidateID string,
) (*model.JobApplication, error) {
	return r.getByQuery(ctx, applicationGetByPairQuery, "get application by pair", jobOfferID, candidateID)
}

// Exists reports whether the candidate already applied to the offer.
func (r *ApplicationRepo) Exists(
	ctx context.Context,
	jobOfferID, candidateID string,
) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_offer_id = $1 AND candidate_id = $2)`,
			jobOfferID, candidateID,
		).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("check application exists: %w", apperrors.MapDBError(err))
	}
	return exists, nil
}

// ListByOffer retrieves all applications for an offer joined with the
// applicant's opaque profile blob, oldest first.
func (r *ApplicationRepo) ListByOffer(
	ctx context.Context,
	jobOfferID string,
) ([]*model.ApplicationWithCandidate, error) {
	var rowsOut []model.ApplicationWithCandidate
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicationListByOfferQuery, jobOfferID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ApplicationWithCandidate])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list applications by offer: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.ApplicationWithCandidate, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus sets the application status.
func (r *ApplicationRepo) UpdateStatus(
	ctx context.Context,
	id string,
	status model.ApplicationStatus,
) (*model.JobApplication, error) {
	if !status.Valid() {
		return nil, apperrors.Validationf("invalid application status %q", status)
	}
	return r.getByQuery(ctx, applicationUpdateStatusQuery, "update application status", id, status)
}

// getByQuery executes a query returning a single application row.
func (r *ApplicationRepo) getByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.JobApplication, error) {
	var app model.JobApplication
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		app, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, apperrors.MapDBError(err))
	}
	return &app, nil
}
