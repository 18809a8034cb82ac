package dto

import (
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/ledger"
)

// RecordBalanceSheetEntryRequest represents the request body for recording an
// asset or liability.
type RecordBalanceSheetEntryRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=asset liability"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date,omitempty"`
}

// EditBalanceSheetEntryRequest represents the request body for editing a
// balance sheet entry.
type EditBalanceSheetEntryRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// BalanceSheetEntryResponse represents a balance sheet line in API responses.
type BalanceSheetEntryResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
}

// BalanceSheetResponse represents the balance sheet with per-kind totals.
type BalanceSheetResponse struct {
	Entries          []BalanceSheetEntryResponse `json:"entries"`
	TotalAssets      string                      `json:"total_assets"`
	TotalLiabilities string                      `json:"total_liabilities"`
	NetWorth         string                      `json:"net_worth"`
}

// ToBalanceSheetEntryResponse converts a BalanceSheetEntryOutput to its DTO.
func ToBalanceSheetEntryResponse(e *ledger.BalanceSheetEntryOutput) BalanceSheetEntryResponse {
	return BalanceSheetEntryResponse{
		ID:          e.ID.String(),
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		Kind:        string(e.Kind),
		Amount:      e.Amount.String(),
	}
}

// ToBalanceSheetResponse converts a ListBalanceSheetOutput to its DTO.
func ToBalanceSheetResponse(output *ledger.ListBalanceSheetOutput) BalanceSheetResponse {
	entries := make([]BalanceSheetEntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = ToBalanceSheetEntryResponse(e)
	}
	return BalanceSheetResponse{
		Entries:          entries,
		TotalAssets:      output.TotalAssets.String(),
		TotalLiabilities: output.TotalLiabilities.String(),
		NetWorth:         output.NetWorth.String(),
	}
}
