package dto

import (
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/wellness"
)

// WellnessResponse represents the wellness score and narrative.
type WellnessResponse struct {
	Score            int    `json:"score"`
	RawScore         int    `json:"raw_score"`
	ExceedsTarget    bool   `json:"exceeds_target"`
	Band             string `json:"band"`
	PrimaryTip       string `json:"primary_tip"`
	SupplementaryTip string `json:"supplementary_tip"`
	AvgCashflow      string `json:"avg_cashflow"`
	Target           string `json:"target"`
}

// ToWellnessResponse converts a ComputeWellnessOutput to a WellnessResponse DTO.
func ToWellnessResponse(output *wellness.ComputeWellnessOutput) WellnessResponse {
	return WellnessResponse{
		Score:            output.Score.Display,
		RawScore:         output.Score.Raw,
		ExceedsTarget:    output.Score.ExceedsTarget,
		Band:             string(output.Band),
		PrimaryTip:       output.PrimaryTip,
		SupplementaryTip: output.SupplementaryTip,
		AvgCashflow:      output.AvgCashflow.String(),
		Target:           output.Target.String(),
	}
}
