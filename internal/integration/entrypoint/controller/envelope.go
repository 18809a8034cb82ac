package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/dto"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/middleware"
)

// EnvelopeController handles allocation envelope endpoints.
type EnvelopeController struct {
	listUseCase   *allocation.ListEnvelopesUseCase
	addUseCase    *allocation.AddEnvelopeUseCase
	updateUseCase *allocation.UpdateEnvelopeUseCase
	removeUseCase *allocation.RemoveEnvelopeUseCase
	commitUseCase *allocation.CommitPlanUseCase
}

// NewEnvelopeController creates a new envelope controller instance.
func NewEnvelopeController(
	listUseCase *allocation.ListEnvelopesUseCase,
	addUseCase *allocation.AddEnvelopeUseCase,
	updateUseCase *allocation.UpdateEnvelopeUseCase,
	removeUseCase *allocation.RemoveEnvelopeUseCase,
	commitUseCase *allocation.CommitPlanUseCase,
) *EnvelopeController {
	return &EnvelopeController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		removeUseCase: removeUseCase,
		commitUseCase: commitUseCase,
	}
}

// List handles GET /envelopes requests.
func (c *EnvelopeController) List(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), allocation.ListEnvelopesInput{ProfileID: profileID})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEnvelopeListResponse(output))
}

// Add handles POST /envelopes requests.
func (c *EnvelopeController) Add(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AddEnvelopeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEnvelopeFields),
		})
		return
	}

	percentage, err := decimal.NewFromString(req.Percentage)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid percentage format",
			Code:  string(domainerror.ErrCodeInvalidEnvelopePercentage),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), allocation.AddEnvelopeInput{
		ProfileID:  profileID,
		Name:       req.Name,
		Percentage: percentage,
	})
	if err != nil {
		c.handleEnvelopeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEnvelopeResponse(output.Envelope))
}

// Update handles PATCH /envelopes/:id requests.
func (c *EnvelopeController) Update(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	envelopeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid envelope ID format",
		})
		return
	}

	var req dto.UpdateEnvelopeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := allocation.UpdateEnvelopeInput{
		ProfileID:  profileID,
		EnvelopeID: envelopeID,
		Name:       req.Name,
	}

	if req.Percentage != nil {
		percentage, err := decimal.NewFromString(*req.Percentage)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid percentage format",
				Code:  string(domainerror.ErrCodeInvalidEnvelopePercentage),
			})
			return
		}
		input.Percentage = &percentage
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEnvelopeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEnvelopeResponse(output.Envelope))
}

// Remove handles DELETE /envelopes/:id requests.
func (c *EnvelopeController) Remove(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	envelopeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid envelope ID format",
		})
		return
	}

	output, err := c.removeUseCase.Execute(ctx.Request.Context(), allocation.RemoveEnvelopeInput{
		ProfileID:  profileID,
		EnvelopeID: envelopeID,
	})
	if err != nil {
		c.handleEnvelopeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlanStateResponse{PlanState: string(output.PlanState)})
}

// Commit handles POST /envelopes/commit requests.
func (c *EnvelopeController) Commit(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.commitUseCase.Execute(ctx.Request.Context(), allocation.CommitPlanInput{ProfileID: profileID})
	if err != nil {
		c.handleEnvelopeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlanStateResponse{
		PlanState:     string(output.PlanState),
		PercentageSum: output.PercentageSum.String(),
	})
}

// handleEnvelopeError maps an envelope use case error to an HTTP response.
func (c *EnvelopeController) handleEnvelopeError(ctx *gin.Context, err error) {
	var envErr *domainerror.EnvelopeError
	if errors.As(err, &envErr) {
		ctx.JSON(getStatusCodeForEnvelopeError(envErr.Code), dto.ErrorResponse{
			Error: envErr.Message,
			Code:  string(envErr.Code),
		})
		return
	}

	handleProfileScopedError(ctx, err)
}

// getStatusCodeForEnvelopeError maps envelope error codes to HTTP status codes.
func getStatusCodeForEnvelopeError(code domainerror.EnvelopeErrorCode) int {
	switch code {
	case domainerror.ErrCodeEnvelopeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePlanOverAllocated,
		domainerror.ErrCodePlanNotBalanced:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidEnvelopePercentage,
		domainerror.ErrCodeEmptyEnvelopeName,
		domainerror.ErrCodeDuplicateEnvelopeName,
		domainerror.ErrCodeMissingEnvelopeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
