package dto

import (
	"time"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/ledger"
)

// RecordEntryRequest represents the request body for recording a ledger entry.
type RecordEntryRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=income expense"`
	Category    string `json:"category,omitempty" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date,omitempty"`
}

// EditEntryRequest represents the request body for editing a ledger entry.
type EditEntryRequest struct {
	Amount      *string `json:"amount,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Date        *string `json:"date,omitempty"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID           string    `json:"id"`
	MonthLabel   string    `json:"month_label"`
	CategoryName string    `json:"category_name"`
	Date         string    `json:"date"`
	Description  string    `json:"description"`
	Amount       string    `json:"amount"`
	Kind         string    `json:"kind"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryResponse represents a category with its entries and totals.
type CategoryResponse struct {
	Name          string          `json:"name"`
	TotalIncome   string          `json:"total_income"`
	TotalExpenses string          `json:"total_expenses"`
	Entries       []EntryResponse `json:"entries"`
}

// MonthResponse represents a month bucket with its categories and totals.
type MonthResponse struct {
	Label         string             `json:"label"`
	TotalIncome   string             `json:"total_income"`
	TotalExpenses string             `json:"total_expenses"`
	Categories    []CategoryResponse `json:"categories"`
}

// ListMonthsResponse represents the full ledger hierarchy.
type ListMonthsResponse struct {
	Months []MonthResponse `json:"months"`
}

// ToEntryResponse converts an EntryOutput to an EntryResponse DTO.
func ToEntryResponse(e *ledger.EntryOutput) EntryResponse {
	return EntryResponse{
		ID:           e.ID.String(),
		MonthLabel:   e.MonthLabel,
		CategoryName: e.CategoryName,
		Date:         e.Date.Format("2006-01-02"),
		Description:  e.Description,
		Amount:       e.Amount.String(),
		Kind:         string(e.Kind),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToListMonthsResponse converts a ListMonthsOutput to a ListMonthsResponse DTO.
func ToListMonthsResponse(output *ledger.ListMonthsOutput) ListMonthsResponse {
	months := make([]MonthResponse, len(output.Months))
	for i, m := range output.Months {
		categories := make([]CategoryResponse, len(m.Categories))
		for j, c := range m.Categories {
			entries := make([]EntryResponse, len(c.Entries))
			for k, e := range c.Entries {
				entries[k] = ToEntryResponse(e)
			}
			categories[j] = CategoryResponse{
				Name:          c.Name,
				TotalIncome:   c.TotalIncome.String(),
				TotalExpenses: c.TotalExpenses.String(),
				Entries:       entries,
			}
		}
		months[i] = MonthResponse{
			Label:         m.Label,
			TotalIncome:   m.TotalIncome.String(),
			TotalExpenses: m.TotalExpenses.String(),
			Categories:    categories,
		}
	}
	return ListMonthsResponse{Months: months}
}
