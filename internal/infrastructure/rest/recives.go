package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ListRecives GET /recive — títulos a receber.
func (c *Client) ListRecives(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Receivable], error) {
	var out dto.Page[entity.Receivable]
	err := c.get(ctx, "/recive", listValues(f), &out)
	return out, err
}

// GetRecive GET /recive/{id}.
func (c *Client) GetRecive(ctx context.Context, id int64) (entity.Receivable, error) {
	var out entity.Receivable
	err := c.get(ctx, fmt.Sprintf("/recive/%d", id), nil, &out)
	return out, err
}

// UpdateReciveStatus PATCH /recive/{id}/status.
func (c *Client) UpdateReciveStatus(ctx context.Context, id int64, status string) (entity.Receivable, error) {
	var out entity.Receivable
	err := c.patchJSON(ctx, fmt.Sprintf("/recive/%d/status", id), dto.UpdateStatusRequest{Status: status}, &out)
	return out, err
}

// PayRecive PATCH /recive/{id}/payment — baixa do título a receber.
func (c *Client) PayRecive(ctx context.Context, id int64, in dto.PaymentRequest) (entity.Receivable, error) {
	var out entity.Receivable
	err := c.patchJSON(ctx, fmt.Sprintf("/recive/%d/payment", id), in, &out)
	return out, err
}
