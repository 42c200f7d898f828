package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/domain"
)

type RecommendProduct struct {
	Recommender command.Command[command.RecommendByProductRequest, command.RecommendationSet]
}

type RecommendProductRequestBody struct {
	ProductID int64 `json:"product_id"`
	Limit     *int  `json:"limit,omitempty"`
}

func (c RecommendProduct) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body RecommendProductRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, r, fmt.Errorf("decoding request body: %w", err))
		return
	}

	if body.ProductID <= 0 {
		writeBadRequest(w, r, fmt.Errorf("invalid product_id [%d]", body.ProductID))
		return
	}

	limit, err := parseLimit(body.Limit, defaultProductBasedLimit)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	set, err := c.Recommender.Execute(r.Context(), command.RecommendByProductRequest{
		ProductID: body.ProductID,
		Limit:     limit,
	})
	if err != nil {
		ctx := r.Context()
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to recommend by product", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := recommendationResponse(set)
	response.ReferenceProductID = &body.ProductID

	writeJSON(w, r, http.StatusOK, response)
}
