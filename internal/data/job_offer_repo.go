package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hirewire/hirewire/internal/data/pgxutil"
	"github.com/hirewire/hirewire/internal/domain/model"
	apperrors "github.com/hirewire/hirewire/internal/errors"
)

// JobOfferRepo provides database operations for job offers.
type JobOfferRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobOfferRepo creates a new JobOfferRepo with real time provider.
func NewJobOfferRepo(db *sql.DB) *JobOfferRepo {
	return &JobOfferRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobOfferRepoWithTimeProvider creates a new JobOfferRepo with a custom
// time provider (useful for tests).
func NewJobOfferRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobOfferRepo {
	return &JobOfferRepo{DB: db, timeProvider: tp}
}

const offerColumns = `id, employer_id, title, description, category, job_type, location_type,
	       city, state, budget_min, budget_max, start_date, end_date,
	       status, is_active, created_at, updated_at`

// SQL query constants for static queries (no dynamic SET clauses).
const (
	offerGetByIDQuery = `
		SELECT ` + offerColumns + `
		FROM job_offers
		WHERE id = $1`

	offerListByEmployerQuery = `
		SELECT ` + offerColumns + `
		FROM job_offers
		WHERE employer_id = $1
		ORDER BY created_at DESC`

	offerInsertQuery = `
		INSERT INTO job_offers (
			id, employer_id, title, description, category, job_type, location_type,
			city, state, budget_min, budget_max, start_date, end_date,
			status, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16
		) RETURNING ` + offerColumns

	// Status and is_active move together in one write; is_active is derived
	// from the new status inside the statement.
	offerUpdateStatusQuery = `
		UPDATE job_offers
		SET status = $2, is_active = ($2 = 'open'), updated_at = $3
		WHERE id = $1
		RETURNING ` + offerColumns
)

// Create inserts a new job offer. New offers always start open and active.
func (r *JobOfferRepo) Create(
	ctx context.Context,
	req *model.CreateJobOfferRequest,
) (*model.JobOffer, error) {
	if req == nil {
		return nil, errors.New("create job offer request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid job offer")
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobOffer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offerInsertQuery,
			uuid.NewString(),
			strings.TrimSpace(req.EmployerID),
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Description),
			strings.TrimSpace(req.Category),
			req.JobType,
			req.Location,
			strings.TrimSpace(req.City),
			strings.TrimSpace(req.State),
			req.BudgetMin,
			req.BudgetMax,
			req.StartDate,
			req.EndDate,
			model.JobStatusOpen,
			model.IsActiveFor(model.JobStatusOpen),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobOffer])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a job offer by ID.
func (r *JobOfferRepo) GetByID(ctx context.Context, id string) (*model.JobOffer, error) {
	var offer model.JobOffer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offerGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		offer, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobOffer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("get job offer by id: %w", apperrors.MapDBError(err))
	}
	return &offer, nil
}

// ListByEmployer retrieves all offers owned by an employer, newest first.
func (r *JobOfferRepo) ListByEmployer(
	ctx context.Context,
	employerID string,
) ([]*model.JobOffer, error) {
	var rowsOut []model.JobOffer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offerListByEmployerQuery, employerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobOffer])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list job offers by employer: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.JobOffer, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates the descriptive fields of an offer. Status and is_active are
// untouched here; they only move through UpdateStatus.
func (r *JobOfferRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateJobOfferRequest,
) (*model.JobOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid job offer update")
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := "UPDATE job_offers SET " + setClause +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + offerColumns

	var out model.JobOffer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobOffer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferNotFound
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for an offer update.
func (r *JobOfferRepo) buildUpdateClause(req model.UpdateJobOfferRequest) (string, []any) {
	setParts := make([]string, 0, 12)
	args := make([]any, 0, 12)
	set := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		set("description", strings.TrimSpace(*req.Description))
	}
	if req.Category != nil {
		set("category", strings.TrimSpace(*req.Category))
	}
	if req.JobType != nil {
		set("job_type", *req.JobType)
	}
	if req.Location != nil {
		set("location_type", *req.Location)
	}
	if req.City != nil {
		set("city", strings.TrimSpace(*req.City))
	}
	if req.State != nil {
		set("state", strings.TrimSpace(*req.State))
	}
	if req.BudgetMin != nil {
		set("budget_min", *req.BudgetMin)
	}
	if req.BudgetMax != nil {
		set("budget_max", *req.BudgetMax)
	}
	if req.StartDate != nil {
		set("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		set("end_date", *req.EndDate)
	}
	set("updated_at", r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// UpdateStatus moves an offer to the given status and recomputes is_active
// atomically in the same statement.
func (r *JobOfferRepo) UpdateStatus(
	ctx context.Context,
	id string,
	status model.JobStatus,
) (*model.JobOffer, error) {
	if !status.Valid() {
		return nil, apperrors.Validationf("invalid status %q", status)
	}

	var out model.JobOffer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offerUpdateStatusQuery, id, status, r.timeProvider.Now().UTC())
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobOffer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferNotFound
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a job offer by ID. Applications cascade at the schema level.
func (r *JobOfferRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete job offer: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}
