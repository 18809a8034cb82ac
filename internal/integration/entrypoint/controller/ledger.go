// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/ledger"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/dto"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/middleware"
)

const dateLayout = "2006-01-02"

// LedgerController handles ledger entry endpoints.
type LedgerController struct {
	listMonthsUseCase *ledger.ListMonthsUseCase
	recordUseCase     *ledger.RecordEntryUseCase
	editUseCase       *ledger.EditEntryUseCase
	duplicateUseCase  *ledger.DuplicateEntryUseCase
	deleteUseCase     *ledger.DeleteEntryUseCase
	averagesUseCase   *ledger.AveragesUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	listMonthsUseCase *ledger.ListMonthsUseCase,
	recordUseCase *ledger.RecordEntryUseCase,
	editUseCase *ledger.EditEntryUseCase,
	duplicateUseCase *ledger.DuplicateEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
	averagesUseCase *ledger.AveragesUseCase,
) *LedgerController {
	return &LedgerController{
		listMonthsUseCase: listMonthsUseCase,
		recordUseCase:     recordUseCase,
		editUseCase:       editUseCase,
		duplicateUseCase:  duplicateUseCase,
		deleteUseCase:     deleteUseCase,
		averagesUseCase:   averagesUseCase,
	}
}

// ListMonths handles GET /ledger/months requests.
func (c *LedgerController) ListMonths(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listMonthsUseCase.Execute(ctx.Request.Context(), ledger.ListMonthsInput{ProfileID: profileID})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListMonthsResponse(output))
}

// Record handles POST /ledger/entries requests.
func (c *LedgerController) Record(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.RecordEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidEntryAmount),
		})
		return
	}

	input := ledger.RecordEntryInput{
		ProfileID:   profileID,
		Kind:        entity.EntryKind(req.Kind),
		Category:    req.Category,
		Description: req.Description,
		Amount:      amount,
	}

	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = date
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Edit handles PATCH /ledger/entries/:id requests.
func (c *LedgerController) Edit(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.EditEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := ledger.EditEntryInput{
		ProfileID: profileID,
		EntryID:   entryID,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidEntryAmount),
			})
			return
		}
		input.Amount = &amount
	}

	if req.Description != nil {
		input.Description = req.Description
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.editUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Duplicate handles POST /ledger/entries/:id/duplicate requests.
func (c *LedgerController) Duplicate(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	output, err := c.duplicateUseCase.Execute(ctx.Request.Context(), ledger.DuplicateEntryInput{
		ProfileID: profileID,
		EntryID:   entryID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /ledger/entries/:id requests.
func (c *LedgerController) Delete(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{
		ProfileID: profileID,
		EntryID:   entryID,
	}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Averages handles GET /ledger/averages requests.
func (c *LedgerController) Averages(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.averagesUseCase.Execute(ctx.Request.Context(), ledger.AveragesInput{ProfileID: profileID})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AveragesResponse{
		AvgIncome:   output.AvgIncome.String(),
		AvgExpenses: output.AvgExpenses.String(),
		AvgCashflow: output.AvgCashflow.String(),
		MonthCount:  output.MonthCount,
	})
}

// handleLedgerError maps a ledger use case error to an HTTP response.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	handleProfileScopedError(ctx, err)
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound,
		domainerror.ErrCodeBalanceSheetEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidEntryAmount,
		domainerror.ErrCodeEmptyEntryDescription,
		domainerror.ErrCodeInvalidEntryKind,
		domainerror.ErrCodeEmptyCategoryName,
		domainerror.ErrCodeInvalidBalanceSheetKind,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleProfileScopedError maps profile lookup failures shared by every
// profile-scoped endpoint; anything unknown becomes a 500.
func handleProfileScopedError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		status := http.StatusInternalServerError
		switch profileErr.Code {
		case domainerror.ErrCodeProfileNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeCorruptDocument,
			domainerror.ErrCodeEmptyProfileName,
			domainerror.ErrCodeInvalidCurrencyCode,
			domainerror.ErrCodeMissingProfileFields:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
