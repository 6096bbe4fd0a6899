package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hirewire/hirewire/config"
	"github.com/hirewire/hirewire/internal/data"
	"github.com/hirewire/hirewire/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Offers       *service.JobOfferService
	Applications *service.ApplicationService
	Bulk         *service.BulkService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	OfferRepo       *data.JobOfferRepo
	ApplicationRepo *data.ApplicationRepo
	CacheRepo       *data.RedisCacheRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		OfferRepo:       data.NewJobOfferRepo(db),
		ApplicationRepo: data.NewApplicationRepo(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// InitServices wires repositories into services.
func InitServices(deps ServiceDeps) ServiceContainer {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
		cfg.Sanitize()
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)

	offerOpts := service.JobOfferServiceOptions{
		Repo:     repos.OfferRepo,
		CacheTTL: cfg.Cache.SnapshotTTL,
		Logger:   deps.Logger,
	}
	if repos.CacheRepo != nil {
		offerOpts.Cache = repos.CacheRepo
	}
	offers := service.MustNewJobOfferService(offerOpts)

	applications := service.MustNewApplicationService(service.ApplicationServiceOptions{
		Repo:   repos.ApplicationRepo,
		Offers: repos.OfferRepo,
		Logger: deps.Logger,
	})

	bulk := service.MustNewBulkService(service.BulkServiceOptions{
		Offers:      offers,
		Concurrency: cfg.Bulk.Concurrency,
		Logger:      deps.Logger,
	})

	return ServiceContainer{
		Offers:       offers,
		Applications: applications,
		Bulk:         bulk,
	}
}
