// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/chart-of-accounts/backend/config"
	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/application/usecase/account"
	"github.com/chart-of-accounts/backend/internal/application/usecase/chart"
	"github.com/chart-of-accounts/backend/internal/infra/server/router"
	"github.com/chart-of-accounts/backend/internal/integration/adapters"
	"github.com/chart-of-accounts/backend/internal/integration/cache"
	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/controller"
	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/middleware"
	"github.com/chart-of-accounts/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Charts       adapter.Charts
	TokenService adapter.TokenService
	RateLimiter  *middleware.RateLimiter
	Router       *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case charts are not cached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create cache and repositories
	var chartCache adapter.ChartCache
	if redisClient != nil {
		chartCache = cache.NewChartCache(redisClient, cfg.Redis.CacheTTL)
	}
	charts := persistence.NewChartRepository(db, chartCache)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiry)

	// Create chart use cases
	listChartsUseCase := chart.NewListChartsUseCase(charts)
	getChartUseCase := chart.NewGetChartUseCase(charts)
	createChartUseCase := chart.NewCreateChartUseCase(charts)
	deleteChartUseCase := chart.NewDeleteChartUseCase(charts)
	activateChartUseCase := chart.NewActivateChartUseCase(charts)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(charts)
	getAccountUseCase := account.NewGetAccountUseCase(charts)
	createAccountUseCase := account.NewCreateAccountUseCase(charts)
	updateAccountUseCase := account.NewUpdateAccountUseCase(charts)
	cloneAccountUseCase := account.NewCloneAccountUseCase(charts)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(charts)

	// Create controllers
	var cacheHealth controller.HealthChecker
	if chartCache != nil {
		cacheHealth = chartCache.Ping
	}
	healthController := controller.NewHealthController(ping(db), cacheHealth)

	chartController := controller.NewChartController(
		listChartsUseCase,
		getChartUseCase,
		createChartUseCase,
		deleteChartUseCase,
		activateChartUseCase,
	)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		getAccountUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		cloneAccountUseCase,
		deleteAccountUseCase,
		controller.PaginationConfig{
			DefaultLimit: cfg.Pagination.DefaultLimit,
			MaxLimit:     cfg.Pagination.MaxLimit,
		},
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(healthController, chartController, accountController, rateLimiter, authMiddleware)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Charts:       charts,
		TokenService: tokenService,
		RateLimiter:  rateLimiter,
		Router:       r,
	}
}

func ping(db *gorm.DB) controller.HealthChecker {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
