package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/currency"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/dto"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/middleware"
)

// CurrencyController handles exchange rate endpoints.
type CurrencyController struct {
	ratesUseCase   *currency.GetRatesUseCase
	convertUseCase *currency.ConvertUseCase
}

// NewCurrencyController creates a new currency controller instance.
func NewCurrencyController(ratesUseCase *currency.GetRatesUseCase, convertUseCase *currency.ConvertUseCase) *CurrencyController {
	return &CurrencyController{
		ratesUseCase:   ratesUseCase,
		convertUseCase: convertUseCase,
	}
}

// Rates handles GET /currency/rates requests.
func (c *CurrencyController) Rates(ctx *gin.Context) {
	output, err := c.ratesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Failed to fetch exchange rates",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRatesResponse(output))
}

// Convert handles POST /currency/convert requests. Conversion is display-only
// and never changes any stored amount.
func (c *CurrencyController) Convert(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ConvertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	output, err := c.convertUseCase.Execute(ctx.Request.Context(), currency.ConvertInput{
		ProfileID: profileID,
		Amount:    amount,
		ToCode:    req.ToCode,
	})
	if err != nil {
		if errors.Is(err, currency.ErrUnknownRate) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConvertResponse(output))
}
