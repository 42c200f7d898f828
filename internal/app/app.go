package app

import (
	"context"
	"fmt"

	"github.com/decodeat/recommendation-service/internal/cache"
	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/datasources/pinecone"
	"github.com/decodeat/recommendation-service/internal/datasources/textembed"
	"github.com/decodeat/recommendation-service/internal/transport/web/router"
	"github.com/decodeat/recommendation-service/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	vectorStore, err := setupVectorStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up vector store: %w", err)
	}

	config := DefaultRecommendationConfig()
	resultCache := cache.NewResults[command.RecommendationSet](config.CacheMaxSize, config.CacheTTL)
	fallback := &command.PopularityFallback{ProductLister: vectorStore}

	recommendByProductCmd := &command.RecommendByProduct{
		ProductFetcher: vectorStore,
		ProductLister:  vectorStore,
		Prober:         vectorStore,
		Fallback:       fallback,
		Cache:          resultCache,
		Weights:        config.SimilarityWeights,
		CandidateScan:  config.CandidateScanLimit,
		MinScore:       config.MinSimilarityScore,
	}

	recommendByUserCmd := &command.RecommendByUser{
		ProductFetcher: vectorStore,
		Querier:        vectorStore,
		Prober:         vectorStore,
		Fallback:       fallback,
		Cache:          resultCache,
	}

	profileCmd := &command.BuildPreferenceProfile{ProductFetcher: vectorStore}

	upsertProductCmd := &command.UpsertProduct{
		Embedder: embedder,
		Upserter: vectorStore,
	}

	removeProductCmd := &command.RemoveProduct{Deleter: vectorStore}

	httpRouter, err := router.MakeRouter(
		recommendByProductCmd,
		recommendByUserCmd,
		profileCmd,
		upsertProductCmd,
		removeProductCmd,
		vectorStore,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDER_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "textembed":
		return textembed.NewClient(
			MustGetEnvAsString(ctx, "TEXTEMBED_BASE_URL"),
			MustGetEnvAsString(ctx, "EMBEDDING_MODEL"),
		), nil
	default:
		return nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}

func setupVectorStore(ctx context.Context) (datasources.ProductVectorStore, error) {
	switch driver := MustGetEnvAsString(ctx, "VECTORSTORE_DRIVER"); driver {
	case "null":
		return datasources.NullProductVectorStore{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown vector store driver [%s]", driver)
	}
}
