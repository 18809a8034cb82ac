// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/controller"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	profileController      *controller.ProfileController
	ledgerController       *controller.LedgerController
	balanceSheetController *controller.BalanceSheetController
	envelopeController     *controller.EnvelopeController
	wellnessController     *controller.WellnessController
	currencyController     *controller.CurrencyController
	sessionRateLimiter     *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	profileController *controller.ProfileController,
	ledgerController *controller.LedgerController,
	balanceSheetController *controller.BalanceSheetController,
	envelopeController *controller.EnvelopeController,
	wellnessController *controller.WellnessController,
	currencyController *controller.CurrencyController,
	sessionRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		profileController:      profileController,
		ledgerController:       ledgerController,
		balanceSheetController: balanceSheetController,
		envelopeController:     envelopeController,
		wellnessController:     wellnessController,
		currencyController:     currencyController,
		sessionRateLimiter:     sessionRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Profile creation and session issue are the only unauthenticated
		// routes; both are rate limited.
		if r.profileController != nil && r.sessionRateLimiter != nil {
			v1.POST("/profiles", r.sessionRateLimiter.Middleware(), r.profileController.Create)
			v1.POST("/sessions", r.sessionRateLimiter.Middleware(), r.profileController.CreateSession)
		}

		// Profile document routes (require a session)
		if r.profileController != nil && r.authMiddleware != nil {
			prof := v1.Group("/profile")
			prof.Use(r.authMiddleware.Authenticate())
			{
				prof.GET("", r.profileController.Overview)
				prof.POST("/reset", r.profileController.Reset)
				prof.GET("/export", r.profileController.Export)
				prof.POST("/import", r.profileController.Import)
				prof.POST("/backup", r.profileController.EmailBackup)
			}
		}

		// Ledger routes (require a session)
		if r.ledgerController != nil && r.authMiddleware != nil {
			ledger := v1.Group("/ledger")
			ledger.Use(r.authMiddleware.Authenticate())
			{
				ledger.GET("/months", r.ledgerController.ListMonths)
				ledger.GET("/averages", r.ledgerController.Averages)
				ledger.POST("/entries", r.ledgerController.Record)
				ledger.PATCH("/entries/:id", r.ledgerController.Edit)
				ledger.POST("/entries/:id/duplicate", r.ledgerController.Duplicate)
				ledger.DELETE("/entries/:id", r.ledgerController.Delete)
			}
		}

		// Balance sheet routes (require a session)
		if r.balanceSheetController != nil && r.authMiddleware != nil {
			balanceSheet := v1.Group("/balance-sheet")
			balanceSheet.Use(r.authMiddleware.Authenticate())
			{
				balanceSheet.GET("", r.balanceSheetController.List)
				balanceSheet.POST("/entries", r.balanceSheetController.Record)
				balanceSheet.PATCH("/entries/:id", r.balanceSheetController.Edit)
				balanceSheet.DELETE("/entries/:id", r.balanceSheetController.Delete)
			}
		}

		// Envelope routes (require a session)
		if r.envelopeController != nil && r.authMiddleware != nil {
			envelopes := v1.Group("/envelopes")
			envelopes.Use(r.authMiddleware.Authenticate())
			{
				envelopes.GET("", r.envelopeController.List)
				envelopes.POST("", r.envelopeController.Add)
				envelopes.POST("/commit", r.envelopeController.Commit)
				envelopes.PATCH("/:id", r.envelopeController.Update)
				envelopes.DELETE("/:id", r.envelopeController.Remove)
			}
		}

		// Wellness route (requires a session)
		if r.wellnessController != nil && r.authMiddleware != nil {
			wellness := v1.Group("/wellness")
			wellness.Use(r.authMiddleware.Authenticate())
			{
				wellness.GET("", r.wellnessController.Get)
			}
		}

		// Currency routes
		if r.currencyController != nil && r.authMiddleware != nil {
			currency := v1.Group("/currency")
			{
				currency.GET("/rates", r.currencyController.Rates)
				currency.POST("/convert", r.authMiddleware.Authenticate(), r.currencyController.Convert)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
