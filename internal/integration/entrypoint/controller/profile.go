package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/profile"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/dto"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles profile lifecycle and document endpoints.
type ProfileController struct {
	createUseCase      *profile.CreateProfileUseCase
	overviewUseCase    *profile.GetOverviewUseCase
	resetUseCase       *profile.ResetProfileUseCase
	exportUseCase      *profile.ExportProfileUseCase
	importUseCase      *profile.ImportProfileUseCase
	emailBackupUseCase *profile.EmailBackupUseCase
	tokenService       adapter.TokenService
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	createUseCase *profile.CreateProfileUseCase,
	overviewUseCase *profile.GetOverviewUseCase,
	resetUseCase *profile.ResetProfileUseCase,
	exportUseCase *profile.ExportProfileUseCase,
	importUseCase *profile.ImportProfileUseCase,
	emailBackupUseCase *profile.EmailBackupUseCase,
	tokenService adapter.TokenService,
) *ProfileController {
	return &ProfileController{
		createUseCase:      createUseCase,
		overviewUseCase:    overviewUseCase,
		resetUseCase:       resetUseCase,
		exportUseCase:      exportUseCase,
		importUseCase:      importUseCase,
		emailBackupUseCase: emailBackupUseCase,
		tokenService:       tokenService,
	}
}

// Create handles POST /profiles requests. The response carries the session
// token every profile-scoped endpoint requires.
func (c *ProfileController) Create(ctx *gin.Context) {
	var req dto.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProfileFields),
		})
		return
	}

	target, err := decimal.NewFromString(req.Target)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target format",
			Code:  string(domainerror.ErrCodeMissingProfileFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), profile.CreateProfileInput{
		Name:         req.Name,
		CurrencyCode: req.CurrencyCode,
		Target:       target,
	})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	token, err := c.tokenService.GenerateSessionToken(ctx.Request.Context(), output.Profile.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to issue session token",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateProfileResponse{
		Profile: dto.ToProfileResponse(output.Profile),
		Token:   token,
	})
}

// CreateSession handles POST /sessions requests. It re-issues a session token
// for an existing profile so a returning browser can reattach to its document.
func (c *ProfileController) CreateSession(ctx *gin.Context) {
	var req struct {
		ProfileID string `json:"profile_id" binding:"required,uuid"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid profile ID format",
		})
		return
	}

	// Confirm the profile exists before issuing a token for it.
	if _, err := c.overviewUseCase.Execute(ctx.Request.Context(), profile.GetOverviewInput{ProfileID: profileID}); err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	token, err := c.tokenService.GenerateSessionToken(ctx.Request.Context(), profileID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to issue session token",
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"token": token})
}

// Overview handles GET /profile requests.
func (c *ProfileController) Overview(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), profile.GetOverviewInput{ProfileID: profileID})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// Reset handles POST /profile/reset requests. It clears every aggregate while
// keeping the profile identity and session valid.
func (c *ProfileController) Reset(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), profile.ResetProfileInput{ProfileID: profileID}); err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /profile/export requests. The document downloads as a
// JSON attachment.
func (c *ProfileController) Export(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), profile.ExportProfileInput{ProfileID: profileID})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "application/json", output.Payload)
}

// Import handles POST /profile/import requests. The uploaded document
// replaces the whole aggregate; there is no merge.
func (c *ProfileController) Import(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ImportProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeCorruptDocument),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), profile.ImportProfileInput{
		ProfileID: profileID,
		Payload:   []byte(req.Document),
	})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// EmailBackup handles POST /profile/backup requests.
func (c *ProfileController) EmailBackup(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.EmailBackupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.emailBackupUseCase.Execute(ctx.Request.Context(), profile.EmailBackupInput{
		ProfileID: profileID,
		To:        req.To,
	})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EmailBackupResponse{
		Filename:   output.Filename,
		ProviderID: output.ProviderID,
	})
}
