package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ListSales GET /sale.
func (c *Client) ListSales(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Sale], error) {
	var out dto.Page[entity.Sale]
	err := c.get(ctx, "/sale", listValues(f), &out)
	return out, err
}

// GetSale GET /sale/{id}.
func (c *Client) GetSale(ctx context.Context, id int64) (entity.Sale, error) {
	var out entity.Sale
	err := c.get(ctx, fmt.Sprintf("/sale/%d", id), nil, &out)
	return out, err
}

// CreateSale POST /sale. O backend cria junto o título a receber com a
// dataVencimento informada.
func (c *Client) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (entity.Sale, error) {
	var out entity.Sale
	err := c.postJSON(ctx, "/sale", in, &out)
	return out, err
}

// UpdateSale PUT /sale/{id}.
func (c *Client) UpdateSale(ctx context.Context, id int64, in dto.UpdateSaleRequest) (entity.Sale, error) {
	var out entity.Sale
	err := c.putJSON(ctx, fmt.Sprintf("/sale/%d", id), in, &out)
	return out, err
}

// DeleteSale DELETE /sale/{id}. Remove também o título a receber derivado.
func (c *Client) DeleteSale(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/sale/%d", id))
}

// SaleReceipt GET /sale/{id}/receipt — bytes brutos; classificar via pkg/sniff.
func (c *Client) SaleReceipt(ctx context.Context, id int64) ([]byte, error) {
	return c.getBlob(ctx, fmt.Sprintf("/sale/%d/receipt", id))
}
