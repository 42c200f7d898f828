package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/decodeat/recommendation-service/internal/cache"
	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/datasources/mocks"
	"github.com/decodeat/recommendation-service/internal/domain"
)

func testProductMetadata(name string, carb, protein, fat, calories float64, ingredients ...string) datasources.ProductMetadata {
	return datasources.ProductMetadata{
		Name:            name,
		Carbohydrate:    carb,
		Protein:         protein,
		Fat:             fat,
		TotalCalories:   calories,
		MainIngredients: ingredients,
	}
}

func newTestRecommendByProduct(
	fetcher *mocks.MockProductFetcher,
	lister *mocks.MockProductLister,
	prober *mocks.MockAvailabilityProber,
) *RecommendByProduct {
	return &RecommendByProduct{
		ProductFetcher: fetcher,
		ProductLister:  lister,
		Prober:         prober,
		Fallback:       &PopularityFallback{ProductLister: lister},
		Cache:          cache.NewResults[RecommendationSet](100, time.Minute),
		Weights:        domain.DefaultSimilarityWeights,
		CandidateScan:  1000,
		MinScore:       0.1,
	}
}

func TestRecommendByProduct_Execute_Primary(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	reference := datasources.ProductRecord{
		ID:       42,
		Metadata: testProductMetadata("protein bar", 40, 30, 30, 400, "oats", "whey", "honey"),
	}

	prober.EXPECT().IsAvailable(mock.Anything).Return(true)
	fetcher.EXPECT().
		FetchProducts(mock.Anything, []int64{42}, false).
		Return(map[int64]datasources.ProductRecord{42: reference}, nil)
	lister.EXPECT().
		ListProducts(mock.Anything, 1000).
		Return([]datasources.ProductRecord{
			reference,
			{ID: 7, Metadata: testProductMetadata("twin bar", 40, 30, 30, 390, "oats", "whey", "honey")},
			{ID: 8, Metadata: testProductMetadata("salt snack", 90, 5, 5, 200, "potato", "salt", "oil")},
		}, nil)

	cmd := newTestRecommendByProduct(fetcher, lister, prober)

	got, err := cmd.Execute(context.Background(), RecommendByProductRequest{ProductID: 42, Limit: 15})

	require.NoError(t, err)
	assert.Equal(t, domain.RecommendationTypeProductBased, got.Type)
	require.NotEmpty(t, got.Recommendations)

	top := got.Recommendations[0]
	assert.Equal(t, int64(7), top.ProductID)
	assert.Greater(t, top.SimilarityScore, 0.95)
	assert.Contains(t, top.Reason, "highly similar")
	require.NotNil(t, top.NutritionSimilarity)
	require.NotNil(t, top.IngredientSimilarity)

	for _, rec := range got.Recommendations {
		assert.NotEqual(t, int64(42), rec.ProductID, "reference product must never recommend itself")
		assert.GreaterOrEqual(t, rec.SimilarityScore, 0.1)
	}
	for i := 1; i < len(got.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			got.Recommendations[i-1].SimilarityScore,
			got.Recommendations[i].SimilarityScore,
			"results must be sorted by score descending")
	}
}

func TestRecommendByProduct_Execute_LimitTruncates(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	reference := datasources.ProductRecord{
		ID:       1,
		Metadata: testProductMetadata("yogurt", 30, 40, 30, 150, "milk", "culture"),
	}

	candidates := []datasources.ProductRecord{reference}
	for i := int64(2); i <= 10; i++ {
		candidates = append(candidates, datasources.ProductRecord{
			ID:       i,
			Metadata: testProductMetadata("yogurt variant", 30, 40, 30, 150, "milk", "culture"),
		})
	}

	prober.EXPECT().IsAvailable(mock.Anything).Return(true)
	fetcher.EXPECT().
		FetchProducts(mock.Anything, []int64{1}, false).
		Return(map[int64]datasources.ProductRecord{1: reference}, nil)
	lister.EXPECT().ListProducts(mock.Anything, 1000).Return(candidates, nil)

	cmd := newTestRecommendByProduct(fetcher, lister, prober)

	got, err := cmd.Execute(context.Background(), RecommendByProductRequest{ProductID: 1, Limit: 3})

	require.NoError(t, err)
	assert.Len(t, got.Recommendations, 3)
}

func TestRecommendByProduct_Execute_FallbackCascade(t *testing.T) {
	cases := []struct {
		name        string
		available   bool
		fetchErr    error
		fetchResult map[int64]datasources.ProductRecord
		wantType    domain.RecommendationType
	}{
		{
			name:      "store_unavailable_goes_to_fallback",
			available: false,
			wantType:  domain.RecommendationTypeFallback,
		},
		{
			name:      "missing_reference_goes_to_fallback",
			available: true,
			wantType:  domain.RecommendationTypeFallback,
		},
		{
			name:      "fetch_error_goes_to_fallback",
			available: true,
			fetchErr:  errors.New("deadline exceeded"),
			wantType:  domain.RecommendationTypeFallback,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockProductFetcher(t)
			lister := mocks.NewMockProductLister(t)
			prober := mocks.NewMockAvailabilityProber(t)

			prober.EXPECT().IsAvailable(mock.Anything).Return(tc.available)
			if tc.available {
				fetcher.EXPECT().
					FetchProducts(mock.Anything, []int64{5}, false).
					Return(tc.fetchResult, tc.fetchErr)
			}
			lister.EXPECT().
				ListProducts(mock.Anything, 15).
				Return([]datasources.ProductRecord{{ID: 100}, {ID: 101}}, nil)

			cmd := newTestRecommendByProduct(fetcher, lister, prober)

			got, err := cmd.Execute(context.Background(), RecommendByProductRequest{ProductID: 5, Limit: 15})

			require.NoError(t, err, "dependency failures must never surface as errors")
			assert.Equal(t, tc.wantType, got.Type)
			assert.Equal(t, domain.DataQualityFair, got.DataQuality)
			require.Len(t, got.Recommendations, 2)
			assert.Equal(t, domain.RecommendationTypePopularity, got.Recommendations[0].Type)
			assert.InDelta(t, 0.8, got.Recommendations[0].SimilarityScore, 0.0001)
			assert.InDelta(t, 0.75, got.Recommendations[1].SimilarityScore, 0.0001)
		})
	}
}

func TestRecommendByProduct_Execute_NothingAvailable(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	prober.EXPECT().IsAvailable(mock.Anything).Return(false)
	lister.EXPECT().ListProducts(mock.Anything, 15).Return(nil, errors.New("connection refused"))

	cmd := newTestRecommendByProduct(fetcher, lister, prober)

	got, err := cmd.Execute(context.Background(), RecommendByProductRequest{ProductID: 5, Limit: 15})

	require.NoError(t, err)
	assert.Equal(t, domain.RecommendationTypeNone, got.Type)
	assert.Equal(t, domain.DataQualityPoor, got.DataQuality)
	assert.Empty(t, got.Recommendations)
	assert.NotEmpty(t, got.Message)
}

func TestRecommendByProduct_Execute_CachesSuccesses(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	reference := datasources.ProductRecord{
		ID:       1,
		Metadata: testProductMetadata("granola", 60, 15, 25, 450, "oats", "nuts"),
	}

	prober.EXPECT().IsAvailable(mock.Anything).Return(true).Once()
	fetcher.EXPECT().
		FetchProducts(mock.Anything, []int64{1}, false).
		Return(map[int64]datasources.ProductRecord{1: reference}, nil).
		Once()
	lister.EXPECT().
		ListProducts(mock.Anything, 1000).
		Return([]datasources.ProductRecord{
			reference,
			{ID: 2, Metadata: testProductMetadata("muesli", 60, 15, 25, 440, "oats", "nuts")},
		}, nil).
		Once()

	cmd := newTestRecommendByProduct(fetcher, lister, prober)

	first, err := cmd.Execute(context.Background(), RecommendByProductRequest{ProductID: 1, Limit: 15})
	require.NoError(t, err)

	second, err := cmd.Execute(context.Background(), RecommendByProductRequest{ProductID: 1, Limit: 15})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
