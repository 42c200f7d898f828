package controller

import (
	"encoding/json"
	"net/http"

	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/domain"
)

// RecommendationResponse is the envelope every recommendation endpoint
// answers with, including degraded and empty outcomes.
type RecommendationResponse struct {
	Recommendations    []domain.Recommendation   `json:"recommendations"`
	TotalCount         int                       `json:"total_count"`
	ReferenceProductID *int64                    `json:"reference_product_id,omitempty"`
	UserID             *int64                    `json:"user_id,omitempty"`
	RecommendationType domain.RecommendationType `json:"recommendation_type"`
	DataQuality        domain.DataQuality        `json:"data_quality"`
	Message            string                    `json:"message"`
}

func recommendationResponse(set command.RecommendationSet) RecommendationResponse {
	recommendations := set.Recommendations
	if recommendations == nil {
		recommendations = []domain.Recommendation{}
	}

	return RecommendationResponse{
		Recommendations:    recommendations,
		TotalCount:         len(recommendations),
		RecommendationType: set.Type,
		DataQuality:        set.DataQuality,
		Message:            set.Message,
	}
}

// ErrorResponse carries the reason a request was rejected as invalid.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	domain.LoggerFromContext(ctx).WarnContext(ctx, "rejecting invalid request", "error", err)
	writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
