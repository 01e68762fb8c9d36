package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// As rotas usam as grafias históricas do backend: /payble e /recive.

// ListPaybles GET /payble — títulos a pagar.
func (c *Client) ListPaybles(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Payable], error) {
	var out dto.Page[entity.Payable]
	err := c.get(ctx, "/payble", listValues(f), &out)
	return out, err
}

// GetPayble GET /payble/{id}.
func (c *Client) GetPayble(ctx context.Context, id int64) (entity.Payable, error) {
	var out entity.Payable
	err := c.get(ctx, fmt.Sprintf("/payble/%d", id), nil, &out)
	return out, err
}

// UpdatePaybleStatus PATCH /payble/{id}/status.
func (c *Client) UpdatePaybleStatus(ctx context.Context, id int64, status string) (entity.Payable, error) {
	var out entity.Payable
	err := c.patchJSON(ctx, fmt.Sprintf("/payble/%d/status", id), dto.UpdateStatusRequest{Status: status}, &out)
	return out, err
}

// PayPayble PATCH /payble/{id}/payment — baixa do título: registra data de
// pagamento e valor pago; o backend deriva o status Pago.
func (c *Client) PayPayble(ctx context.Context, id int64, in dto.PaymentRequest) (entity.Payable, error) {
	var out entity.Payable
	err := c.patchJSON(ctx, fmt.Sprintf("/payble/%d/payment", id), in, &out)
	return out, err
}
