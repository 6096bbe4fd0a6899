package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirewire/hirewire/internal/core"
	"github.com/hirewire/hirewire/internal/data"
	"github.com/hirewire/hirewire/internal/domain/model"
	apperrors "github.com/hirewire/hirewire/internal/errors"
	"github.com/hirewire/hirewire/internal/mocks"
)

const (
	testOfferID    = "offer-1"
	testEmployerID = "employer-1"
)

func newTestOfferService(t *testing.T, repo core.JobOfferRepository, cache core.CacheRepository) *JobOfferService {
	t.Helper()
	svc, err := NewJobOfferService(JobOfferServiceOptions{Repo: repo, Cache: cache})
	require.NoError(t, err)
	return svc
}

func openOffer() *model.JobOffer {
	return &model.JobOffer{
		ID:         testOfferID,
		EmployerID: testEmployerID,
		Title:      "Senior Backend Engineer",
		Status:     model.JobStatusOpen,
		IsActive:   true,
	}
}

func offerInStatus(status model.JobStatus) *model.JobOffer {
	offer := openOffer()
	offer.Status = status
	offer.IsActive = model.IsActiveFor(status)
	return offer
}

func TestNewJobOfferService_RequiredDependency(t *testing.T) {
	svc, err := NewJobOfferService(JobOfferServiceOptions{})
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "JobOfferRepository is required")
}

func TestMustNewJobOfferService_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewJobOfferService(JobOfferServiceOptions{})
	})
}

func TestJobOfferService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	req := &model.CreateJobOfferRequest{
		EmployerID:  testEmployerID,
		Title:       "Senior Backend Engineer",
		Description: "Design and operate the marketplace backend services.",
		Category:    "engineering",
		JobType:     model.JobTypeFullTime,
		Location:    model.LocationRemote,
	}

	mockRepo.EXPECT().
		Create(ctx, req).
		Return(openOffer(), nil).
		Times(1)

	offer, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusOpen, offer.Status)
	assert.True(t, offer.IsActive)
}

func TestJobOfferService_Create_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	req := &model.CreateJobOfferRequest{EmployerID: testEmployerID, Title: "Dev"}
	offer, err := svc.Create(context.Background(), req)

	assert.Nil(t, offer)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobOfferService_Create_NilRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestOfferService(t, mocks.NewMockJobOfferRepository(ctrl), nil)
	_, err := svc.Create(context.Background(), nil)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobOfferService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, data.ErrOfferNotFound).
		Times(1)

	offer, err := svc.GetByID(ctx, "missing")
	assert.Nil(t, offer)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobOfferService_ListByEmployer_RequiresEmployer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestOfferService(t, mocks.NewMockJobOfferRepository(ctrl), nil)
	_, err := svc.ListByEmployer(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobOfferService_ListByEmployer_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, mockCache)

	ctx := context.Background()
	cached, err := json.Marshal([]*model.JobOffer{openOffer()})
	require.NoError(t, err)

	mockCache.EXPECT().
		Get(ctx, "offers:employer:"+testEmployerID).
		Return(cached, nil).
		Times(1)
	// Repo is never consulted on a cache hit.

	offers, err := svc.ListByEmployer(ctx, testEmployerID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, testOfferID, offers[0].ID)
}

func TestJobOfferService_ListByEmployer_CacheMissStoresSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, mockCache)

	ctx := context.Background()
	offers := []*model.JobOffer{openOffer()}

	mockCache.EXPECT().
		Get(ctx, "offers:employer:"+testEmployerID).
		Return(nil, nil).
		Times(1)
	mockRepo.EXPECT().
		ListByEmployer(ctx, testEmployerID).
		Return(offers, nil).
		Times(1)
	mockCache.EXPECT().
		Set(ctx, "offers:employer:"+testEmployerID, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	got, err := svc.ListByEmployer(ctx, testEmployerID)
	require.NoError(t, err)
	assert.Equal(t, offers, got)
}

func TestJobOfferService_ListByEmployer_CacheFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, mockCache)

	ctx := context.Background()
	offers := []*model.JobOffer{openOffer()}

	mockCache.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.New("redis down")).
		Times(1)
	mockRepo.EXPECT().
		ListByEmployer(ctx, testEmployerID).
		Return(offers, nil).
		Times(1)
	mockCache.EXPECT().
		Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).
		Times(1)

	got, err := svc.ListByEmployer(ctx, testEmployerID)
	require.NoError(t, err)
	assert.Equal(t, offers, got)
}

func TestJobOfferService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().
		ListByEmployer(ctx, testEmployerID).
		Return([]*model.JobOffer{
			offerInStatus(model.JobStatusOpen),
			offerInStatus(model.JobStatusClosed),
		}, nil).
		Times(1)

	summary, err := svc.Summary(ctx, testEmployerID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.True(t, summary.HasOpen)
	assert.False(t, summary.HasPaused)
	assert.True(t, summary.HasClosed)
}

func TestJobOfferService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	title := "Staff Platform Engineer"
	req := model.UpdateJobOfferRequest{Title: &title}

	updated := openOffer()
	updated.Title = title

	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	mockRepo.EXPECT().Update(ctx, testOfferID, req).Return(updated, nil).Times(1)

	got, err := svc.Update(ctx, testOfferID, testEmployerID, req)
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
}

func TestJobOfferService_Update_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	title := "Staff Platform Engineer"

	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	// Update is never attempted for a non-owner.

	_, err := svc.Update(ctx, testOfferID, "employer-2", model.UpdateJobOfferRequest{Title: &title})
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestJobOfferService_Update_EmptyPatchRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestOfferService(t, mocks.NewMockJobOfferRepository(ctrl), nil)
	_, err := svc.Update(context.Background(), testOfferID, testEmployerID, model.UpdateJobOfferRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobOfferService_SetStatus_PauseOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	paused := offerInStatus(model.JobStatusPaused)

	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	mockRepo.EXPECT().UpdateStatus(ctx, testOfferID, model.JobStatusPaused).Return(paused, nil).Times(1)

	got, err := svc.SetStatus(ctx, testOfferID, testEmployerID, model.JobStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusPaused, got.Status)
	assert.False(t, got.IsActive)
}

func TestJobOfferService_SetStatus_ReopenClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	reopened := offerInStatus(model.JobStatusOpen)

	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(offerInStatus(model.JobStatusClosed), nil).Times(1)
	mockRepo.EXPECT().UpdateStatus(ctx, testOfferID, model.JobStatusOpen).Return(reopened, nil).Times(1)

	got, err := svc.SetStatus(ctx, testOfferID, testEmployerID, model.JobStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusOpen, got.Status)
	assert.True(t, got.IsActive)
}

func TestJobOfferService_SetStatus_OpenToOpenRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	// UpdateStatus is never reached; the offer stays untouched.

	_, err := svc.SetStatus(ctx, testOfferID, testEmployerID, model.JobStatusOpen)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
	assert.Contains(t, err.Error(), "cannot resume")
}

func TestJobOfferService_SetStatus_InvalidTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestOfferService(t, mocks.NewMockJobOfferRepository(ctrl), nil)
	_, err := svc.SetStatus(context.Background(), testOfferID, testEmployerID, "archived")
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobOfferService_ApplyAction_Conclude(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	closed := offerInStatus(model.JobStatusClosed)

	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(offerInStatus(model.JobStatusPaused), nil).Times(1)
	mockRepo.EXPECT().UpdateStatus(ctx, testOfferID, model.JobStatusClosed).Return(closed, nil).Times(1)

	got, err := svc.ApplyAction(ctx, testOfferID, testEmployerID, model.ActionConclude)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusClosed, got.Status)
}

func TestJobOfferService_ApplyAction_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	mockRepo.EXPECT().Delete(ctx, testOfferID).Return(true, nil).Times(1)

	got, err := svc.ApplyAction(ctx, testOfferID, testEmployerID, model.ActionDelete)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestJobOfferService_ApplyAction_InvalidAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestOfferService(t, mocks.NewMockJobOfferRepository(ctrl), nil)
	_, err := svc.ApplyAction(context.Background(), testOfferID, testEmployerID, "archive")
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobOfferService_Delete_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)

	err := svc.Delete(ctx, testOfferID, "employer-2")
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestJobOfferService_Delete_RowGoneMapsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	svc := newTestOfferService(t, mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	mockRepo.EXPECT().Delete(ctx, testOfferID).Return(false, nil).Times(1)

	err := svc.Delete(ctx, testOfferID, testEmployerID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobOfferService_Transition_InvalidatesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc, err := NewJobOfferService(JobOfferServiceOptions{
		Repo:     mockRepo,
		Cache:    mockCache,
		CacheTTL: time.Minute,
	})
	require.NoError(t, err)

	ctx := context.Background()
	paused := offerInStatus(model.JobStatusPaused)

	mockRepo.EXPECT().GetByID(ctx, testOfferID).Return(openOffer(), nil).Times(1)
	mockRepo.EXPECT().UpdateStatus(ctx, testOfferID, model.JobStatusPaused).Return(paused, nil).Times(1)
	mockCache.EXPECT().
		Delete(ctx, "offers:employer:"+testEmployerID).
		Return(true, nil).
		Times(1)

	_, err = svc.SetStatus(ctx, testOfferID, testEmployerID, model.JobStatusPaused)
	require.NoError(t, err)
}
