package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirewire/hirewire/internal/data"
	"github.com/hirewire/hirewire/internal/domain/model"
	apperrors "github.com/hirewire/hirewire/internal/errors"
	"github.com/hirewire/hirewire/internal/mocks"
)

const (
	testApplicationID = "application-1"
	testCandidateID   = "candidate-1"
)

type applicationTestDeps struct {
	repo   *mocks.MockApplicationRepository
	offers *mocks.MockJobOfferRepository
	svc    *ApplicationService
}

func newTestApplicationService(t *testing.T, ctrl *gomock.Controller) applicationTestDeps {
	t.Helper()
	repo := mocks.NewMockApplicationRepository(ctrl)
	offers := mocks.NewMockJobOfferRepository(ctrl)
	svc, err := NewApplicationService(ApplicationServiceOptions{Repo: repo, Offers: offers})
	require.NoError(t, err)
	return applicationTestDeps{repo: repo, offers: offers, svc: svc}
}

func pendingApplication() *model.JobApplication {
	return &model.JobApplication{
		ID:          testApplicationID,
		JobOfferID:  testOfferID,
		CandidateID: testCandidateID,
		Status:      model.ApplicationPending,
	}
}

func applicationInStatus(status model.ApplicationStatus) *model.JobApplication {
	app := pendingApplication()
	app.Status = status
	return app
}

func TestNewApplicationService_RequiredDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewApplicationService(ApplicationServiceOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ApplicationRepository is required")

	_, err = NewApplicationService(ApplicationServiceOptions{
		Repo: mocks.NewMockApplicationRepository(ctrl),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JobOfferRepository is required")
}

func TestApplicationService_Apply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	message := "I built a very similar marketplace in my last role."
	proposal := 4200.0
	req := &model.ApplyRequest{
		JobOfferID:      testOfferID,
		CandidateID:     testCandidateID,
		Message:         &message,
		CounterProposal: &proposal,
	}

	created := pendingApplication()
	created.Message = &message
	created.CounterProposal = &proposal

	deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	deps.repo.EXPECT().Exists(ctx, testOfferID, testCandidateID).Return(false, nil).Times(1)
	deps.repo.EXPECT().Create(ctx, req).Return(created, nil).Times(1)

	app, err := deps.svc.Apply(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationPending, app.Status)
	require.NotNil(t, app.Message)
	assert.Equal(t, message, *app.Message)
	require.NotNil(t, app.CounterProposal)
	assert.InDelta(t, proposal, *app.CounterProposal, 0.001)
}

func TestApplicationService_Apply_OfferNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.offers.EXPECT().GetByID(ctx, "missing").Return(nil, data.ErrOfferNotFound).Times(1)

	_, err := deps.svc.Apply(ctx, &model.ApplyRequest{JobOfferID: "missing", CandidateID: testCandidateID})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_Apply_OfferNotOpen(t *testing.T) {
	for _, status := range []model.JobStatus{model.JobStatusPaused, model.JobStatusClosed} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deps := newTestApplicationService(t, ctrl)
			ctx := context.Background()

			deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(offerInStatus(status), nil).Times(1)

			_, err := deps.svc.Apply(ctx, &model.ApplyRequest{
				JobOfferID:  testOfferID,
				CandidateID: testCandidateID,
			})
			assert.True(t, apperrors.IsJobClosed(err))
		})
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	deps.repo.EXPECT().Exists(ctx, testOfferID, testCandidateID).Return(true, nil).Times(1)

	_, err := deps.svc.Apply(ctx, &model.ApplyRequest{
		JobOfferID:  testOfferID,
		CandidateID: testCandidateID,
	})
	assert.True(t, apperrors.IsDuplicateApplication(err))
}

func TestApplicationService_Apply_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)

	_, err := deps.svc.Apply(context.Background(), &model.ApplyRequest{CandidateID: testCandidateID})
	assert.True(t, apperrors.IsValidation(err))

	_, err = deps.svc.Apply(context.Background(), nil)
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationService_UpdateStatus_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().GetByID(ctx, testApplicationID).Return(pendingApplication(), nil).Times(1)
	deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	deps.repo.EXPECT().
		UpdateStatus(ctx, testApplicationID, model.ApplicationAccepted).
		Return(applicationInStatus(model.ApplicationAccepted), nil).
		Times(1)

	app, err := deps.svc.UpdateStatus(ctx, testApplicationID, testEmployerID, model.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationAccepted, app.Status)
}

func TestApplicationService_UpdateStatus_RejectsNonDecisionTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)

	for _, target := range []model.ApplicationStatus{model.ApplicationPending, model.ApplicationWithdrawn} {
		_, err := deps.svc.UpdateStatus(context.Background(), testApplicationID, testEmployerID, target)
		assert.True(t, apperrors.IsValidation(err), "target %s", target)
	}
}

func TestApplicationService_UpdateStatus_NotOfferOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().GetByID(ctx, testApplicationID).Return(pendingApplication(), nil).Times(1)
	deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)

	_, err := deps.svc.UpdateStatus(ctx, testApplicationID, "employer-2", model.ApplicationAccepted)
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestApplicationService_UpdateStatus_AlreadyDecided(t *testing.T) {
	for _, current := range []model.ApplicationStatus{
		model.ApplicationAccepted,
		model.ApplicationRejected,
		model.ApplicationWithdrawn,
	} {
		t.Run(string(current), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deps := newTestApplicationService(t, ctrl)
			ctx := context.Background()

			deps.repo.EXPECT().GetByID(ctx, testApplicationID).Return(applicationInStatus(current), nil).Times(1)
			deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)

			_, err := deps.svc.UpdateStatus(ctx, testApplicationID, testEmployerID, model.ApplicationRejected)
			assert.True(t, apperrors.IsInvalidTransition(err))
		})
	}
}

func TestApplicationService_Withdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().GetByID(ctx, testApplicationID).Return(pendingApplication(), nil).Times(1)
	deps.repo.EXPECT().
		UpdateStatus(ctx, testApplicationID, model.ApplicationWithdrawn).
		Return(applicationInStatus(model.ApplicationWithdrawn), nil).
		Times(1)

	app, err := deps.svc.Withdraw(ctx, testApplicationID, testCandidateID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationWithdrawn, app.Status)
}

func TestApplicationService_Withdraw_NotApplicant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().GetByID(ctx, testApplicationID).Return(pendingApplication(), nil).Times(1)

	_, err := deps.svc.Withdraw(ctx, testApplicationID, "candidate-2")
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestApplicationService_Withdraw_Terminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().
		GetByID(ctx, testApplicationID).
		Return(applicationInStatus(model.ApplicationWithdrawn), nil).
		Times(1)

	// Withdrawn is terminal: withdrawing again is rejected, not idempotent.
	_, err := deps.svc.Withdraw(ctx, testApplicationID, testCandidateID)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestApplicationService_Withdraw_AfterDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().
		GetByID(ctx, testApplicationID).
		Return(applicationInStatus(model.ApplicationAccepted), nil).
		Times(1)

	_, err := deps.svc.Withdraw(ctx, testApplicationID, testCandidateID)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestApplicationService_HasApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Exists(ctx, testOfferID, testCandidateID).Return(true, nil).Times(1)

	applied, err := deps.svc.HasApplied(ctx, testOfferID, testCandidateID)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestApplicationService_GetByPair_MissingIsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().
		GetByPair(ctx, testOfferID, testCandidateID).
		Return(nil, data.ErrApplicationNotFound).
		Times(1)

	app, err := deps.svc.GetByPair(ctx, testOfferID, testCandidateID)
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestApplicationService_ListCandidates_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)

	_, err := deps.svc.ListCandidates(ctx, testOfferID, "employer-2")
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestApplicationService_ListCandidates_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestApplicationService(t, ctrl)
	ctx := context.Background()

	joined := []*model.ApplicationWithCandidate{
		{JobApplication: *pendingApplication()},
	}

	deps.offers.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	deps.repo.EXPECT().ListByOffer(ctx, testOfferID).Return(joined, nil).Times(1)

	apps, err := deps.svc.ListCandidates(ctx, testOfferID, testEmployerID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, testCandidateID, apps[0].CandidateID)
}
