package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ListProducts GET /product.
func (c *Client) ListProducts(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Product], error) {
	var out dto.Page[entity.Product]
	err := c.get(ctx, "/product", listValues(f), &out)
	return out, err
}

// GetProduct GET /product/{id}.
func (c *Client) GetProduct(ctx context.Context, id int64) (entity.Product, error) {
	var out entity.Product
	err := c.get(ctx, fmt.Sprintf("/product/%d", id), nil, &out)
	return out, err
}

// CreateProduct POST /product.
func (c *Client) CreateProduct(ctx context.Context, in entity.Product) (entity.Product, error) {
	var out entity.Product
	err := c.postJSON(ctx, "/product", in, &out)
	return out, err
}

// UpdateProduct PUT /product/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in entity.Product) (entity.Product, error) {
	var out entity.Product
	err := c.putJSON(ctx, fmt.Sprintf("/product/%d", id), in, &out)
	return out, err
}

// DeleteProduct DELETE /product/{id}.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/product/%d", id))
}

// ProductReceipt GET /product/{id}/receipt — recibo gerado pelo backend.
// Devolve os bytes brutos; o chamador classifica o tipo via pkg/sniff, pois o
// Content-Type declarado não é confiável.
func (c *Client) ProductReceipt(ctx context.Context, id int64) ([]byte, error) {
	return c.getBlob(ctx, fmt.Sprintf("/product/%d/receipt", id))
}
