package controller

import (
	"net/http"

	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
)

type Health struct {
	Prober  datasources.AvailabilityProber
	Counter datasources.ProductCounter
}

type HealthResponse struct {
	Status       string `json:"status"`
	VectorStore  string `json:"vector_store"`
	ProductCount int64  `json:"product_count"`
}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := HealthResponse{Status: "ok", VectorStore: "available"}

	if !c.Prober.IsAvailable(ctx) {
		response.Status = "degraded"
		response.VectorStore = "unavailable"
		writeJSON(w, r, http.StatusOK, response)
		return
	}

	count, err := c.Counter.CountProducts(ctx)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to count products", "error", err)
		response.Status = "degraded"
		writeJSON(w, r, http.StatusOK, response)
		return
	}

	response.ProductCount = count
	writeJSON(w, r, http.StatusOK, response)
}
