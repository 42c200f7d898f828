package command

import (
	"context"
	"fmt"

	"github.com/decodeat/recommendation-service/internal/datasources"
)

// RemoveProductRequest deletes a product from the vector index.
type RemoveProductRequest struct {
	ProductID int64
}

type RemoveProduct struct {
	Deleter datasources.ProductDeleter
}

var _ Command[RemoveProductRequest, Empty] = (*RemoveProduct)(nil)

func (c *RemoveProduct) Execute(ctx context.Context, req RemoveProductRequest) (Empty, error) {
	if err := c.Deleter.DeleteProduct(ctx, req.ProductID); err != nil {
		return Empty{}, fmt.Errorf("removing product [%d]: %w", req.ProductID, err)
	}

	return Empty{}, nil
}
