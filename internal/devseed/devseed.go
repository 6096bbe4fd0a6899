// Package devseed populates a development database with a small, stable set
// of employers, offers, candidate profiles, and applications. Seeding is
// idempotent: employers that already have offers are left alone.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hirewire/hirewire/internal/data"
	"github.com/hirewire/hirewire/internal/domain/model"
	"github.com/hirewire/hirewire/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB           *sql.DB
	offers       *service.JobOfferService
	applications *service.ApplicationService
}

// NewServices constructs all required services for seeding using the provided DB.
// Seeding goes through the services, not the repos, so the same lifecycle
// guards apply to seeded data as to real traffic. No cache is wired.
func NewServices(db *sql.DB) Services {
	offerRepo := data.NewJobOfferRepo(db)
	applicationRepo := data.NewApplicationRepo(db)

	offerService := service.MustNewJobOfferService(service.JobOfferServiceOptions{
		Repo: offerRepo,
	})
	applicationService := service.MustNewApplicationService(service.ApplicationServiceOptions{
		Repo:   applicationRepo,
		Offers: offerRepo,
	})

	return Services{
		DB:           db,
		offers:       offerService,
		applications: applicationService,
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedCandidateProfiles(ctx, svcs.DB, logger)

	for _, emp := range seedEmployers() {
		n, err := seedEmployer(ctx, svcs, emp, logger)
		if err != nil {
			return err
		}
		failures += n
	}

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

type seedOffer struct {
	Req          model.CreateJobOfferRequest
	TargetStatus model.JobStatus
	Applicants   []seedApplicant
}

type seedApplicant struct {
	CandidateID     string
	Message         string
	CounterProposal *float64
	Decision        model.ApplicationStatus
}

type seedEmployerSet struct {
	EmployerID string
	Offers     []seedOffer
}

func seedEmployers() []seedEmployerSet {
	return []seedEmployerSet{
		{
			EmployerID: "dev-employer-acme",
			Offers: []seedOffer{
				{
					Req: model.CreateJobOfferRequest{
						EmployerID:  "dev-employer-acme",
						Title:       "Senior Backend Engineer",
						Description: "Own the marketplace services: offers, applications, and the lifecycle rules between them.",
						Category:    "engineering",
						JobType:     model.JobTypeFullTime,
						Location:    model.LocationRemote,
						BudgetMin:   f64(120000),
						BudgetMax:   f64(160000),
					},
					Applicants: []seedApplicant{
						{
							CandidateID: "dev-candidate-ada",
							Message:     "Ten years of Go and Postgres. Available in two weeks.",
							Decision:    model.ApplicationAccepted,
						},
						{
							CandidateID:     "dev-candidate-grace",
							Message:         "Interested, but the budget is light for the scope.",
							CounterProposal: f64(175000),
						},
					},
				},
				{
					Req: model.CreateJobOfferRequest{
						EmployerID:  "dev-employer-acme",
						Title:       "Data Pipeline Contractor",
						Description: "Three month project building ingestion pipelines for the analytics warehouse.",
						Category:    "data",
						JobType:     model.JobTypeProject,
						Location:    model.LocationHybrid,
						City:        "Minneapolis",
						State:       "MN",
					},
					TargetStatus: model.JobStatusPaused,
				},
				{
					Req: model.CreateJobOfferRequest{
						EmployerID:  "dev-employer-acme",
						Title:       "Office Coordinator",
						Description: "Front desk and facilities coordination for the downtown office, five days a week.",
						Category:    "operations",
						JobType:     model.JobTypePartTime,
						Location:    model.LocationOnSite,
						City:        "Minneapolis",
						State:       "MN",
					},
					TargetStatus: model.JobStatusClosed,
					Applicants: []seedApplicant{
						{
							CandidateID: "dev-candidate-linus",
							Message:     "Local, flexible hours, references on request.",
							Decision:    model.ApplicationRejected,
						},
					},
				},
			},
		},
		{
			EmployerID: "dev-employer-northwind",
			Offers: []seedOffer{
				{
					Req: model.CreateJobOfferRequest{
						EmployerID:  "dev-employer-northwind",
						Title:       "Freelance Technical Writer",
						Description: "Rework the public API documentation and keep it current across releases.",
						Category:    "content",
						JobType:     model.JobTypeFreelance,
						Location:    model.LocationRemote,
						BudgetMin:   f64(4000),
						BudgetMax:   f64(6000),
					},
					Applicants: []seedApplicant{
						{
							CandidateID: "dev-candidate-grace",
							Message:     "Writing samples attached to my profile.",
						},
					},
				},
			},
		},
	}
}

// seedEmployer creates one employer's offers and applications. Returns the
// number of non-fatal failures.
func seedEmployer(
	ctx context.Context,
	svcs Services,
	emp seedEmployerSet,
	logger *slog.Logger,
) (int, error) {
	existing, err := svcs.offers.ListByEmployer(ctx, emp.EmployerID)
	if err != nil {
		return 0, fmt.Errorf("list offers for %s: %w", emp.EmployerID, err)
	}
	if len(existing) > 0 {
		if logger != nil {
			logger.InfoContext(ctx, "employer already seeded, skipping",
				"employer_id", emp.EmployerID, "offers", len(existing))
		}
		return 0, nil
	}

	failures := 0
	for i := range emp.Offers {
		if seedErr := seedOneOffer(ctx, svcs, &emp.Offers[i], logger); seedErr != nil {
			failures++
			if logger != nil {
				logger.ErrorContext(ctx, "failed to seed offer",
					"employer_id", emp.EmployerID,
					"title", emp.Offers[i].Req.Title,
					"error", seedErr)
			}
		}
	}

	if logger != nil {
		logger.InfoContext(ctx, "employer seeded",
			"employer_id", emp.EmployerID, "offers", len(emp.Offers))
	}
	return failures, nil
}

func seedOneOffer(
	ctx context.Context,
	svcs Services,
	seed *seedOffer,
	logger *slog.Logger,
) error {
	offer, err := svcs.offers.Create(ctx, &seed.Req)
	if err != nil {
		return fmt.Errorf("create offer: %w", err)
	}

	// Applications must land while the offer is still open.
	for _, applicant := range seed.Applicants {
		if appErr := seedApplication(ctx, svcs, offer, applicant); appErr != nil {
			return appErr
		}
	}

	if seed.TargetStatus != "" && seed.TargetStatus != model.JobStatusOpen {
		if _, statusErr := svcs.offers.SetStatus(ctx, offer.ID, offer.EmployerID, seed.TargetStatus); statusErr != nil {
			return fmt.Errorf("set offer status to %s: %w", seed.TargetStatus, statusErr)
		}
	}

	if logger != nil {
		logger.DebugContext(ctx, "offer seeded", "id", offer.ID, "title", offer.Title)
	}
	return nil
}

func seedApplication(
	ctx context.Context,
	svcs Services,
	offer *model.JobOffer,
	applicant seedApplicant,
) error {
	req := &model.ApplyRequest{
		JobOfferID:      offer.ID,
		CandidateID:     applicant.CandidateID,
		CounterProposal: applicant.CounterProposal,
	}
	if applicant.Message != "" {
		msg := applicant.Message
		req.Message = &msg
	}

	app, err := svcs.applications.Apply(ctx, req)
	if err != nil {
		return fmt.Errorf("apply candidate %s: %w", applicant.CandidateID, err)
	}

	if model.DecisionStatus(applicant.Decision) {
		if _, decideErr := svcs.applications.UpdateStatus(ctx, app.ID, offer.EmployerID, applicant.Decision); decideErr != nil {
			return fmt.Errorf("decide application %s: %w", app.ID, decideErr)
		}
	}
	return nil
}

// seedCandidateProfiles upserts the opaque profile blobs the application
// listing joins against. Returns the number of failures.
func seedCandidateProfiles(ctx context.Context, db *sql.DB, logger *slog.Logger) int {
	profiles := map[string]string{
		"dev-candidate-ada":   `{"name": "Ada", "headline": "Backend engineer", "skills": ["go", "postgres", "redis"]}`,
		"dev-candidate-grace": `{"name": "Grace", "headline": "Data engineer and writer", "skills": ["python", "sql", "docs"]}`,
		"dev-candidate-linus": `{"name": "Linus", "headline": "Operations generalist", "skills": ["scheduling", "facilities"]}`,
	}

	failures := 0
	for candidateID, profile := range profiles {
		_, err := db.ExecContext(ctx, `
			INSERT INTO candidate_profiles (candidate_id, profile)
			VALUES ($1, $2::jsonb)
			ON CONFLICT (candidate_id) DO UPDATE SET profile = EXCLUDED.profile, updated_at = now()`,
			candidateID, profile)
		if err != nil {
			failures++
			if logger != nil {
				logger.ErrorContext(ctx, "failed to seed candidate profile",
					"candidate_id", candidateID, "error", err)
			}
		}
	}
	return failures
}

func f64(v float64) *float64 { return &v }
