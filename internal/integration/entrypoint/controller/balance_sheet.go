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

// BalanceSheetController handles balance sheet endpoints.
type BalanceSheetController struct {
	listUseCase   *ledger.ListBalanceSheetUseCase
	recordUseCase *ledger.RecordBalanceSheetEntryUseCase
	editUseCase   *ledger.EditBalanceSheetEntryUseCase
	deleteUseCase *ledger.DeleteBalanceSheetEntryUseCase
}

// NewBalanceSheetController creates a new balance sheet controller instance.
func NewBalanceSheetController(
	listUseCase *ledger.ListBalanceSheetUseCase,
	recordUseCase *ledger.RecordBalanceSheetEntryUseCase,
	editUseCase *ledger.EditBalanceSheetEntryUseCase,
	deleteUseCase *ledger.DeleteBalanceSheetEntryUseCase,
) *BalanceSheetController {
	return &BalanceSheetController{
		listUseCase:   listUseCase,
		recordUseCase: recordUseCase,
		editUseCase:   editUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /balance-sheet requests.
func (c *BalanceSheetController) List(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListBalanceSheetInput{ProfileID: profileID})
	if err != nil {
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceSheetResponse(output))
}

// Record handles POST /balance-sheet/entries requests.
func (c *BalanceSheetController) Record(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.RecordBalanceSheetEntryRequest
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

	input := ledger.RecordBalanceSheetEntryInput{
		ProfileID:   profileID,
		Kind:        entity.BalanceSheetKind(req.Kind),
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
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBalanceSheetEntryResponse(output.Entry))
}

// Edit handles PATCH /balance-sheet/entries/:id requests.
func (c *BalanceSheetController) Edit(ctx *gin.Context) {
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

	var req dto.EditBalanceSheetEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := ledger.EditBalanceSheetEntryInput{
		ProfileID: profileID,
		EntryID:   entryID,
	}

	if req.Description != nil {
		input.Description = req.Description
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
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceSheetEntryResponse(output.Entry))
}

// Delete handles DELETE /balance-sheet/entries/:id requests.
func (c *BalanceSheetController) Delete(ctx *gin.Context) {
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

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteBalanceSheetEntryInput{
		ProfileID: profileID,
		EntryID:   entryID,
	}); err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleError maps a balance sheet use case error to an HTTP response.
func (c *BalanceSheetController) handleError(ctx *gin.Context, err error) {
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
