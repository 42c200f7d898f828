package pinecone

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
)

var _ datasources.ProductVectorStore = (*Client)(nil)

const (
	productNamespace = "products"
	fetchBatchSize   = 100
)

type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: productNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func (c *Client) UpsertProduct(ctx context.Context, record datasources.ProductRecord) error {
	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	metadata, err := encodeMetadata(record.ID, record.Metadata)
	if err != nil {
		return err
	}

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{
		{
			Id:       vectorID(record.ID),
			Values:   record.Vector,
			Metadata: metadata,
		},
	})
	if err != nil {
		return fmt.Errorf("upserting product vector [%d]: %w", record.ID, err)
	}

	return nil
}

func (c *Client) FetchProducts(
	ctx context.Context,
	ids []int64,
	includeVectors bool,
) (map[int64]datasources.ProductRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	records := make(map[int64]datasources.ProductRecord, len(ids))
	for start := 0; start < len(ids); start += fetchBatchSize {
		end := start + fetchBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := c.fetchBatch(ctx, idxConn, ids[start:end], includeVectors)
		if err != nil {
			return nil, err
		}
		for id, record := range batch {
			records[id] = record
		}
	}

	return records, nil
}

func (c *Client) fetchBatch(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	ids []int64,
	includeVectors bool,
) (map[int64]datasources.ProductRecord, error) {
	vectorIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		vectorIDs = append(vectorIDs, vectorID(id))
	}

	resp, err := idxConn.FetchVectors(ctx, vectorIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching product vectors: %w", err)
	}

	records := make(map[int64]datasources.ProductRecord, len(resp.Vectors))
	for _, vector := range resp.Vectors {
		record, err := recordFromVector(vector, includeVectors)
		if err != nil {
			return nil, err
		}
		records[record.ID] = record
	}

	return records, nil
}

func (c *Client) ListProducts(ctx context.Context, limit int) ([]datasources.ProductRecord, error) {
	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	ids, err := c.listProductIDs(ctx, idxConn, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return fetchAllProducts(ctx, ids, func(ctx context.Context, batch []int64) (map[int64]datasources.ProductRecord, error) {
		return c.fetchBatch(ctx, idxConn, batch, false)
	}), nil
}

// fetchAllProducts fetches records for the given IDs in concurrent batches.
// A failed batch is logged and skipped; records from the surviving batches
// are returned in ID order.
func fetchAllProducts(
	ctx context.Context,
	ids []int64,
	fetch func(ctx context.Context, ids []int64) (map[int64]datasources.ProductRecord, error),
) []datasources.ProductRecord {
	batches := make([]map[int64]datasources.ProductRecord, (len(ids)+fetchBatchSize-1)/fetchBatchSize)

	var wg sync.WaitGroup
	for i := range batches {
		i := i
		start := i * fetchBatchSize
		end := start + fetchBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			batch, err := fetch(ctx, ids[start:end])
			if err != nil {
				domain.LoggerFromContext(ctx).WarnContext(ctx,
					"fetching product vector batch, skipping",
					"error", err,
				)
				return
			}
			batches[i] = batch
		}()
	}
	wg.Wait()

	records := make([]datasources.ProductRecord, 0, len(ids))
	for _, batch := range batches {
		for _, id := range ids {
			if record, ok := batch[id]; ok {
				records = append(records, record)
			}
		}
	}

	return records
}

func (c *Client) listProductIDs(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	limit int,
) ([]int64, error) {
	var ids []int64
	var paginationToken *string

	for len(ids) < limit {
		remaining := uint32(limit - len(ids))
		if remaining > fetchBatchSize {
			remaining = fetchBatchSize
		}

		resp, err := idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
			Prefix:          nil,
			Limit:           &remaining,
			PaginationToken: paginationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("listing product vector IDs: %w", err)
		}

		for _, id := range resp.VectorIds {
			if id == nil {
				continue
			}
			productID, err := productIDFromVectorID(*id)
			if err != nil {
				continue
			}
			ids = append(ids, productID)
		}

		if resp.NextPaginationToken == nil || len(resp.VectorIds) == 0 {
			break
		}
		paginationToken = resp.NextPaginationToken
	}

	return ids, nil
}

func (c *Client) QuerySimilarProducts(
	ctx context.Context,
	vector []float32,
	count int,
	excludeIDs []int64,
) ([]datasources.SimilarProduct, error) {
	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	filter, err := exclusionFilter(excludeIDs)
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(count),
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar product vectors: %w", err)
	}

	results := make([]datasources.SimilarProduct, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		productID, err := productIDFromVectorID(match.Vector.Id)
		if err != nil {
			continue
		}

		results = append(results, datasources.SimilarProduct{
			ID:       productID,
			Distance: 1 - float64(match.Score),
			Metadata: decodeMetadata(match.Vector.Metadata),
		})
	}

	return results, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	if err := idxConn.DeleteVectorsById(ctx, []string{vectorID(id)}); err != nil {
		return fmt.Errorf("deleting product vector [%d]: %w", id, err)
	}

	return nil
}

func (c *Client) CountProducts(ctx context.Context) (int64, error) {
	idxConn, err := c.connect()
	if err != nil {
		return 0, err
	}
	defer func() { _ = idxConn.Close() }()

	stats, err := idxConn.DescribeIndexStats(ctx)
	if err != nil {
		return 0, fmt.Errorf("describing pinecone index stats: %w", err)
	}

	return int64(stats.TotalVectorCount), nil
}

func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.CountProducts(ctx)
	return err == nil
}

func vectorID(productID int64) string {
	return strconv.FormatInt(productID, 10)
}

func productIDFromVectorID(id string) (int64, error) {
	productID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected pinecone vector ID format [%s]: %w", id, err)
	}
	return productID, nil
}

func exclusionFilter(excludeIDs []int64) (*pinecone.MetadataFilter, error) {
	if len(excludeIDs) == 0 {
		return nil, nil
	}

	filterIDs := make([]any, 0, len(excludeIDs))
	for _, id := range excludeIDs {
		filterIDs = append(filterIDs, float64(id))
	}

	filter, err := structpb.NewStruct(map[string]any{
		"product_id": map[string]any{
			"$nin": filterIDs,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

func recordFromVector(vector *pinecone.Vector, includeVector bool) (datasources.ProductRecord, error) {
	productID, err := productIDFromVectorID(vector.Id)
	if err != nil {
		return datasources.ProductRecord{}, err
	}

	record := datasources.ProductRecord{
		ID:       productID,
		Metadata: decodeMetadata(vector.Metadata),
	}
	if includeVector {
		record.Vector = vector.Values
	}

	return record, nil
}

func encodeMetadata(productID int64, metadata datasources.ProductMetadata) (*pinecone.Metadata, error) {
	ingredients := make([]any, 0, len(metadata.MainIngredients))
	for _, ingredient := range metadata.MainIngredients {
		ingredients = append(ingredients, ingredient)
	}

	encoded, err := structpb.NewStruct(map[string]any{
		"product_id":         float64(productID),
		"name":               metadata.Name,
		"carbohydrate_ratio": metadata.Carbohydrate,
		"protein_ratio":      metadata.Protein,
		"fat_ratio":          metadata.Fat,
		"total_calories":     metadata.TotalCalories,
		"main_ingredients":   ingredients,
		"created_at":         metadata.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":         metadata.UpdatedAt.UTC().Format(time.RFC3339),
		"schema_version":     float64(metadata.SchemaVersion),
	})
	if err != nil {
		return nil, fmt.Errorf("creating product metadata map: %w", err)
	}

	return encoded, nil
}

func decodeMetadata(metadata *pinecone.Metadata) datasources.ProductMetadata {
	if metadata == nil {
		return datasources.ProductMetadata{}
	}

	fields := metadata.GetFields()

	decoded := datasources.ProductMetadata{
		Name:          fields["name"].GetStringValue(),
		Carbohydrate:  fields["carbohydrate_ratio"].GetNumberValue(),
		Protein:       fields["protein_ratio"].GetNumberValue(),
		Fat:           fields["fat_ratio"].GetNumberValue(),
		TotalCalories: fields["total_calories"].GetNumberValue(),
		SchemaVersion: int(fields["schema_version"].GetNumberValue()),
	}

	for _, value := range fields["main_ingredients"].GetListValue().GetValues() {
		decoded.MainIngredients = append(decoded.MainIngredients, value.GetStringValue())
	}

	if createdAt, err := time.Parse(time.RFC3339, fields["created_at"].GetStringValue()); err == nil {
		decoded.CreatedAt = createdAt
	}
	if updatedAt, err := time.Parse(time.RFC3339, fields["updated_at"].GetStringValue()); err == nil {
		decoded.UpdatedAt = updatedAt
	}

	return decoded
}
