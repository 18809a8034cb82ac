// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gap-tools/financial-tracker-backend/config"
	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/currency"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/ledger"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/profile"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/wellness"
	"github.com/gap-tools/financial-tracker-backend/internal/infra/server/router"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/adapters"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/email"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/controller"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/middleware"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence/model"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The snapshot store and its health check arrive from main, which picks the
// backend from config and degrades to memory when none is reachable.
func NewInjector(cfg *config.Config, snapshots adapter.SnapshotStore, storageHealthCheck func() bool, logger *slog.Logger) *Injector {
	// Create the profile repository around the chosen snapshot backend
	codec := model.NewCodec()
	profileRepo := persistence.NewProfileStore(snapshots, codec, logger)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.Session.Secret, cfg.Session.TokenExpiry)
	rateProvider := adapters.NewExchangeRateProvider(cfg.Rates.FeedURL, &http.Client{Timeout: cfg.Rates.Timeout})
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create ledger use cases
	listMonthsUseCase := ledger.NewListMonthsUseCase(profileRepo)
	recordEntryUseCase := ledger.NewRecordEntryUseCase(profileRepo)
	editEntryUseCase := ledger.NewEditEntryUseCase(profileRepo)
	duplicateEntryUseCase := ledger.NewDuplicateEntryUseCase(profileRepo)
	deleteEntryUseCase := ledger.NewDeleteEntryUseCase(profileRepo)
	averagesUseCase := ledger.NewAveragesUseCase(profileRepo)

	// Create balance sheet use cases
	listBalanceSheetUseCase := ledger.NewListBalanceSheetUseCase(profileRepo)
	recordBalanceSheetUseCase := ledger.NewRecordBalanceSheetEntryUseCase(profileRepo)
	editBalanceSheetUseCase := ledger.NewEditBalanceSheetEntryUseCase(profileRepo)
	deleteBalanceSheetUseCase := ledger.NewDeleteBalanceSheetEntryUseCase(profileRepo)

	// Create allocation use cases
	listEnvelopesUseCase := allocation.NewListEnvelopesUseCase(profileRepo)
	addEnvelopeUseCase := allocation.NewAddEnvelopeUseCase(profileRepo)
	updateEnvelopeUseCase := allocation.NewUpdateEnvelopeUseCase(profileRepo)
	removeEnvelopeUseCase := allocation.NewRemoveEnvelopeUseCase(profileRepo)
	commitPlanUseCase := allocation.NewCommitPlanUseCase(profileRepo)

	// Create wellness use case
	computeWellnessUseCase := wellness.NewComputeWellnessUseCase(profileRepo)

	// Create profile use cases
	createProfileUseCase := profile.NewCreateProfileUseCase(profileRepo)
	getOverviewUseCase := profile.NewGetOverviewUseCase(profileRepo)
	resetProfileUseCase := profile.NewResetProfileUseCase(profileRepo)
	exportProfileUseCase := profile.NewExportProfileUseCase(profileRepo, codec)
	importProfileUseCase := profile.NewImportProfileUseCase(profileRepo, codec)
	emailBackupUseCase := profile.NewEmailBackupUseCase(exportProfileUseCase, emailSender)

	// Create currency use cases
	getRatesUseCase := currency.NewGetRatesUseCase(rateProvider)
	convertUseCase := currency.NewConvertUseCase(profileRepo, getRatesUseCase)

	// Create controllers
	healthController := controller.NewHealthController(storageHealthCheck)

	profileController := controller.NewProfileController(
		createProfileUseCase,
		getOverviewUseCase,
		resetProfileUseCase,
		exportProfileUseCase,
		importProfileUseCase,
		emailBackupUseCase,
		tokenService,
	)

	ledgerController := controller.NewLedgerController(
		listMonthsUseCase,
		recordEntryUseCase,
		editEntryUseCase,
		duplicateEntryUseCase,
		deleteEntryUseCase,
		averagesUseCase,
	)

	balanceSheetController := controller.NewBalanceSheetController(
		listBalanceSheetUseCase,
		recordBalanceSheetUseCase,
		editBalanceSheetUseCase,
		deleteBalanceSheetUseCase,
	)

	envelopeController := controller.NewEnvelopeController(
		listEnvelopesUseCase,
		addEnvelopeUseCase,
		updateEnvelopeUseCase,
		removeEnvelopeUseCase,
		commitPlanUseCase,
	)

	wellnessController := controller.NewWellnessController(computeWellnessUseCase)
	currencyController := controller.NewCurrencyController(getRatesUseCase, convertUseCase)

	// Create middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var sessionRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		sessionRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		sessionRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Session.RateLimit, cfg.Session.RateInterval)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		profileController,
		ledgerController,
		balanceSheetController,
		envelopeController,
		wellnessController,
		currencyController,
		sessionRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		Router: r,
	}
}
