package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
	"github.com/decodeat/recommendation-service/internal/transport/web/controller"
)

func MakeRouter(
	productRecommender command.Command[command.RecommendByProductRequest, command.RecommendationSet],
	userRecommender command.Command[command.RecommendByUserRequest, command.RecommendationSet],
	profileBuilder command.Command[command.BuildPreferenceProfileRequest, domain.PreferenceProfile],
	productUpserter command.Command[command.UpsertProductRequest, command.Empty],
	productRemover command.Command[command.RemoveProductRequest, command.Empty],
	vectorStore datasources.ProductVectorStore,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/recommendations/product-based", controller.RecommendProduct{
		Recommender: productRecommender,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/recommendations/user-based", controller.RecommendUser{
		Recommender: userRecommender,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/recommendations/profile", controller.PreferenceProfile{
		Builder: profileBuilder,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/products", controller.ProductUpsert{
		Upserter: productUpserter,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/products/{product_id}", controller.ProductDelete{
		Remover: productRemover,
	}).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/health", controller.Health{
		Prober:  vectorStore,
		Counter: vectorStore,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
