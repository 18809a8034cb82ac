package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/wellness"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/dto"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/entrypoint/middleware"
)

// WellnessController handles the wellness score endpoint.
type WellnessController struct {
	computeUseCase *wellness.ComputeWellnessUseCase
}

// NewWellnessController creates a new wellness controller instance.
func NewWellnessController(computeUseCase *wellness.ComputeWellnessUseCase) *WellnessController {
	return &WellnessController{computeUseCase: computeUseCase}
}

// Get handles GET /wellness requests.
func (c *WellnessController) Get(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Session not established",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.computeUseCase.Execute(ctx.Request.Context(), wellness.ComputeWellnessInput{ProfileID: profileID})
	if err != nil {
		var wellnessErr *domainerror.WellnessError
		if errors.As(err, &wellnessErr) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error: wellnessErr.Message,
				Code:  string(wellnessErr.Code),
			})
			return
		}
		handleProfileScopedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWellnessResponse(output))
}
