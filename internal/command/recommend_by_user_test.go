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

func newTestRecommendByUser(
	fetcher *mocks.MockProductFetcher,
	querier *mocks.MockSimilarProductQuerier,
	lister *mocks.MockProductLister,
	prober *mocks.MockAvailabilityProber,
) *RecommendByUser {
	return &RecommendByUser{
		ProductFetcher: fetcher,
		Querier:        querier,
		Prober:         prober,
		Fallback:       &PopularityFallback{ProductLister: lister},
		Cache:          cache.NewResults[RecommendationSet](100, time.Minute),
	}
}

func TestRecommendByUser_Execute_Primary(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	querier := mocks.NewMockSimilarProductQuerier(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	events := []domain.BehaviorEvent{
		{ProductID: 1, Type: domain.BehaviorRegister},
		{ProductID: 1, Type: domain.BehaviorRegister},
		{ProductID: 2, Type: domain.BehaviorView},
	}

	prober.EXPECT().IsAvailable(mock.Anything).Return(true)
	fetcher.EXPECT().
		FetchProducts(mock.Anything, []int64{1, 2}, true).
		Return(map[int64]datasources.ProductRecord{
			1: {ID: 1, Vector: []float32{1, 0}},
			2: {ID: 2, Vector: []float32{0, 1}},
		}, nil)
	querier.EXPECT().
		QuerySimilarProducts(mock.Anything, mock.Anything, 20, []int64{1, 2}).
		Return([]datasources.SimilarProduct{
			{ID: 9, Distance: 0.05},
			{ID: 1, Distance: 0.1},
			{ID: 10, Distance: 0.3},
		}, nil)

	cmd := newTestRecommendByUser(fetcher, querier, lister, prober)

	got, err := cmd.Execute(context.Background(), RecommendByUserRequest{
		UserID: 7,
		Events: events,
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RecommendationTypeUserBased, got.Type)
	require.Len(t, got.Recommendations, 2, "interacted products must be excluded")

	first := got.Recommendations[0]
	assert.Equal(t, int64(9), first.ProductID)
	assert.InDelta(t, 0.95, first.SimilarityScore, 0.0001)
	assert.Equal(t, domain.EngagementHigh, first.EngagementLevel)
	assert.Contains(t, first.Reason, "similar to products you")

	second := got.Recommendations[1]
	assert.Equal(t, int64(10), second.ProductID)
	assert.InDelta(t, 0.7, second.SimilarityScore, 0.0001)
}

func TestRecommendByUser_Execute_PreferenceVectorWeighting(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	querier := mocks.NewMockSimilarProductQuerier(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	prober.EXPECT().IsAvailable(mock.Anything).Return(true)
	fetcher.EXPECT().
		FetchProducts(mock.Anything, []int64{1}, true).
		Return(map[int64]datasources.ProductRecord{
			1: {ID: 1, Vector: []float32{0.5, -0.25, 0.75}},
		}, nil)

	var queried []float32
	querier.EXPECT().
		QuerySimilarProducts(mock.Anything, mock.Anything, 20, []int64{1}).
		Run(func(_ context.Context, vector []float32, _ int, _ []int64) {
			queried = vector
		}).
		Return([]datasources.SimilarProduct{{ID: 2, Distance: 0.2}}, nil)

	cmd := newTestRecommendByUser(fetcher, querier, lister, prober)

	_, err := cmd.Execute(context.Background(), RecommendByUserRequest{
		UserID: 7,
		Events: []domain.BehaviorEvent{{ProductID: 1, Type: domain.BehaviorLike}},
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.25, 0.75}, queried,
		"a single event's preference vector is that event's embedding")
}

func TestRecommendByUser_Execute_FallbackWhenNoVectorResolvable(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	querier := mocks.NewMockSimilarProductQuerier(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	prober.EXPECT().IsAvailable(mock.Anything).Return(true)
	fetcher.EXPECT().
		FetchProducts(mock.Anything, []int64{5}, true).
		Return(nil, nil)
	lister.EXPECT().
		ListProducts(mock.Anything, 10).
		Return([]datasources.ProductRecord{{ID: 100}}, nil)

	cmd := newTestRecommendByUser(fetcher, querier, lister, prober)

	got, err := cmd.Execute(context.Background(), RecommendByUserRequest{
		UserID: 7,
		Events: []domain.BehaviorEvent{{ProductID: 5, Type: domain.BehaviorView}},
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RecommendationTypeFallback, got.Type)
	assert.Equal(t, domain.DataQualityFair, got.DataQuality)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, int64(100), got.Recommendations[0].ProductID)
}

func TestRecommendByUser_Execute_StoreDownNeverErrors(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	querier := mocks.NewMockSimilarProductQuerier(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	prober.EXPECT().IsAvailable(mock.Anything).Return(false)
	lister.EXPECT().
		ListProducts(mock.Anything, 10).
		Return(nil, errors.New("connection refused"))

	cmd := newTestRecommendByUser(fetcher, querier, lister, prober)

	got, err := cmd.Execute(context.Background(), RecommendByUserRequest{
		UserID: 7,
		Events: []domain.BehaviorEvent{{ProductID: 5, Type: domain.BehaviorView}},
		Limit:  10,
	})

	require.NoError(t, err, "a down store must degrade, not fail")
	assert.Equal(t, domain.RecommendationTypeNone, got.Type)
	assert.Equal(t, domain.DataQualityPoor, got.DataQuality)
	assert.Empty(t, got.Recommendations)
}

func TestRecommendByUser_Execute_QueryErrorFallsBack(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	querier := mocks.NewMockSimilarProductQuerier(t)
	lister := mocks.NewMockProductLister(t)
	prober := mocks.NewMockAvailabilityProber(t)

	prober.EXPECT().IsAvailable(mock.Anything).Return(true)
	fetcher.EXPECT().
		FetchProducts(mock.Anything, []int64{1}, true).
		Return(map[int64]datasources.ProductRecord{
			1: {ID: 1, Vector: []float32{1, 0}},
		}, nil)
	querier.EXPECT().
		QuerySimilarProducts(mock.Anything, mock.Anything, 20, []int64{1}).
		Return(nil, errors.New("deadline exceeded"))
	lister.EXPECT().
		ListProducts(mock.Anything, 10).
		Return([]datasources.ProductRecord{{ID: 100}}, nil)

	cmd := newTestRecommendByUser(fetcher, querier, lister, prober)

	got, err := cmd.Execute(context.Background(), RecommendByUserRequest{
		UserID: 7,
		Events: []domain.BehaviorEvent{{ProductID: 1, Type: domain.BehaviorLike}},
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RecommendationTypeFallback, got.Type)
}
