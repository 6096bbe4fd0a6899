// Package mocks provides mock implementations for testing the marketplace core.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/core. Mocks are regenerated with:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobOfferRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(offer, nil)
package mocks

// Mock for JobOfferRepository: Create, GetByID, ListByEmployer, Update, UpdateStatus, Delete.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_offer_repository_mock.go github.com/hirewire/hirewire/internal/core JobOfferRepository

// Mock for ApplicationRepository: Create, GetByID, GetByPair, ListByOffer, UpdateStatus, Exists.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=application_repository_mock.go github.com/hirewire/hirewire/internal/core ApplicationRepository

// Mock for CacheRepository: Set, Get, Delete.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/hirewire/hirewire/internal/core CacheRepository
