package dto

import (
	"time"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/currency"
)

// ConvertRequest represents the request body for a display conversion.
type ConvertRequest struct {
	Amount string `json:"amount" binding:"required"`
	ToCode string `json:"to_code" binding:"required,len=3"`
}

// ConvertResponse represents a converted, formatted amount.
type ConvertResponse struct {
	FromCode  string `json:"from_code"`
	ToCode    string `json:"to_code"`
	Amount    string `json:"amount"`
	Converted string `json:"converted"`
	Formatted string `json:"formatted"`
}

// RatesResponse represents the USD-relative rate table.
type RatesResponse struct {
	Rates     map[string]string `json:"rates"`
	FetchedAt time.Time         `json:"fetched_at"`
	Cached    bool              `json:"cached"`
}

// ToConvertResponse converts a ConvertOutput to a ConvertResponse DTO.
func ToConvertResponse(output *currency.ConvertOutput) ConvertResponse {
	return ConvertResponse{
		FromCode:  output.FromCode,
		ToCode:    output.ToCode,
		Amount:    output.Amount.String(),
		Converted: output.Converted.String(),
		Formatted: output.Formatted,
	}
}

// ToRatesResponse converts a GetRatesOutput to a RatesResponse DTO.
func ToRatesResponse(output *currency.GetRatesOutput) RatesResponse {
	rates := make(map[string]string, len(output.Rates))
	for code, rate := range output.Rates {
		rates[code] = rate.String()
	}
	return RatesResponse{
		Rates:     rates,
		FetchedAt: output.FetchedAt,
		Cached:    output.Cached,
	}
}
