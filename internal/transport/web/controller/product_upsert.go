package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/domain"
)

type ProductUpsert struct {
	Upserter command.Command[command.UpsertProductRequest, command.Empty]
}

type ProductUpsertRequestBody struct {
	ProductID     int64             `json:"product_id"`
	Name          string            `json:"name"`
	NutritionInfo map[string]string `json:"nutrition_info"`
	Ingredients   []string          `json:"ingredients"`
}

func (c ProductUpsert) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body ProductUpsertRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, r, fmt.Errorf("decoding request body: %w", err))
		return
	}

	if body.ProductID <= 0 {
		writeBadRequest(w, r, fmt.Errorf("invalid product_id [%d]", body.ProductID))
		return
	}
	if body.Name == "" {
		writeBadRequest(w, r, fmt.Errorf("name must not be empty"))
		return
	}

	_, err := c.Upserter.Execute(r.Context(), command.UpsertProductRequest{
		ProductID:     body.ProductID,
		Name:          body.Name,
		NutritionInfo: body.NutritionInfo,
		Ingredients:   body.Ingredients,
	})
	if err != nil {
		ctx := r.Context()
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to upsert product", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
