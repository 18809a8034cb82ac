package dto

import (
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
)

// AddEnvelopeRequest represents the request body for envelope creation.
type AddEnvelopeRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Percentage string `json:"percentage" binding:"required"`
}

// UpdateEnvelopeRequest represents the request body for renaming or
// reweighting an envelope.
type UpdateEnvelopeRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Percentage *string `json:"percentage,omitempty"`
}

// EnvelopeResponse represents one envelope in API responses.
type EnvelopeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Percentage       string `json:"percentage"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// EnvelopeListResponse represents the response for listing envelopes.
type EnvelopeListResponse struct {
	Envelopes     []EnvelopeResponse `json:"envelopes"`
	PercentageSum string             `json:"percentage_sum"`
	PlanState     string             `json:"plan_state"`
	PoolBalance   string             `json:"pool_balance"`
}

// PlanStateResponse represents a plan state transition result.
type PlanStateResponse struct {
	PlanState     string `json:"plan_state"`
	PercentageSum string `json:"percentage_sum,omitempty"`
}

// ToEnvelopeResponse converts an EnvelopeOutput to an EnvelopeResponse DTO.
func ToEnvelopeResponse(env *allocation.EnvelopeOutput) EnvelopeResponse {
	return EnvelopeResponse{
		ID:               env.ID.String(),
		Name:             env.Name,
		Percentage:       env.Percentage.String(),
		Balance:          env.Balance.String(),
		TransactionCount: env.TransactionCount,
	}
}

// ToEnvelopeListResponse converts a ListEnvelopesOutput to its DTO.
func ToEnvelopeListResponse(output *allocation.ListEnvelopesOutput) EnvelopeListResponse {
	envelopes := make([]EnvelopeResponse, len(output.Envelopes))
	for i, env := range output.Envelopes {
		envelopes[i] = ToEnvelopeResponse(env)
	}
	return EnvelopeListResponse{
		Envelopes:     envelopes,
		PercentageSum: output.PercentageSum.String(),
		PlanState:     string(output.PlanState),
		PoolBalance:   output.PoolBalance.String(),
	}
}
