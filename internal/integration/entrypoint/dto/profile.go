package dto

import (
	"time"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/profile"
)

// CreateProfileRequest represents the request body for profile creation.
type CreateProfileRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	CurrencyCode string `json:"currency_code" binding:"required,len=3"`
	Target       string `json:"target" binding:"required"`
}

// ProfileResponse represents the profile identity in API responses.
type ProfileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currency_code"`
	Target       string    `json:"target"`
	Revision     uint64    `json:"revision"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProfileResponse represents the response for profile creation,
// including the session token that keys subsequent requests.
type CreateProfileResponse struct {
	Profile ProfileResponse `json:"profile"`
	Token   string          `json:"token"`
}

// MonthSummaryResponse represents one month's totals in the overview.
type MonthSummaryResponse struct {
	Label         string `json:"label"`
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
}

// AveragesResponse represents per-month averages in API responses.
type AveragesResponse struct {
	AvgIncome   string `json:"avg_income"`
	AvgExpenses string `json:"avg_expenses"`
	AvgCashflow string `json:"avg_cashflow"`
	MonthCount  int    `json:"month_count"`
}

// OverviewResponse represents the dashboard-level profile view.
type OverviewResponse struct {
	Profile     ProfileResponse        `json:"profile"`
	Months      []MonthSummaryResponse `json:"months"`
	Averages    AveragesResponse       `json:"averages"`
	Envelopes   []EnvelopeResponse     `json:"envelopes"`
	PoolBalance string                 `json:"pool_balance"`
	PlanState   string                 `json:"plan_state"`
}

// ImportProfileRequest represents the request body for a document import.
type ImportProfileRequest struct {
	Document string `json:"document" binding:"required"`
}

// EmailBackupRequest represents the request body for emailing a backup.
type EmailBackupRequest struct {
	To string `json:"to" binding:"required,email"`
}

// EmailBackupResponse represents the response for emailing a backup.
type EmailBackupResponse struct {
	Filename   string `json:"filename"`
	ProviderID string `json:"provider_id"`
}

// ToProfileResponse converts a ProfileOutput to a ProfileResponse DTO.
func ToProfileResponse(p *profile.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		CurrencyCode: p.CurrencyCode,
		Target:       p.Target.String(),
		Revision:     p.Revision,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
func ToOverviewResponse(output *profile.GetOverviewOutput) OverviewResponse {
	months := make([]MonthSummaryResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthSummaryResponse{
			Label:         m.Label,
			TotalIncome:   m.TotalIncome.String(),
			TotalExpenses: m.TotalExpenses.String(),
		}
	}

	envelopes := make([]EnvelopeResponse, len(output.Envelopes))
	for i, env := range output.Envelopes {
		envelopes[i] = ToEnvelopeResponse(env)
	}

	return OverviewResponse{
		Profile: ToProfileResponse(output.Profile),
		Months:  months,
		Averages: AveragesResponse{
			AvgIncome:   output.Averages.AvgIncome.String(),
			AvgExpenses: output.Averages.AvgExpenses.String(),
			AvgCashflow: output.Averages.AvgCashflow.String(),
			MonthCount:  output.Averages.MonthCount,
		},
		Envelopes:   envelopes,
		PoolBalance: output.PoolBalance.String(),
		PlanState:   string(output.PlanState),
	}
}
