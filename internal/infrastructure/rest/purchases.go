package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ListPurchases GET /purchase.
func (c *Client) ListPurchases(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Purchase], error) {
	var out dto.Page[entity.Purchase]
	err := c.get(ctx, "/purchase", listValues(f), &out)
	return out, err
}

// GetPurchase GET /purchase/{id}.
func (c *Client) GetPurchase(ctx context.Context, id int64) (entity.Purchase, error) {
	var out entity.Purchase
	err := c.get(ctx, fmt.Sprintf("/purchase/%d", id), nil, &out)
	return out, err
}

// CreatePurchase POST /purchase. Com boleto (slip não nil) a chamada é
// multipart: JSON no campo "data" e o arquivo em "paymentSlip". O backend
// cria junto o título a pagar.
func (c *Client) CreatePurchase(ctx context.Context, in dto.CreatePurchaseRequest, slip []byte, slipName string) (entity.Purchase, error) {
	var out entity.Purchase
	if slip == nil {
		err := c.postJSON(ctx, "/purchase", in, &out)
		return out, err
	}
	err := c.sendMultipart(ctx, "POST", "/purchase", in, "paymentSlip", slipName, slip, &out)
	return out, err
}

// UpdatePurchase PUT /purchase/{id}, mesma convenção de boleto do create.
func (c *Client) UpdatePurchase(ctx context.Context, id int64, in dto.UpdatePurchaseRequest, slip []byte, slipName string) (entity.Purchase, error) {
	var out entity.Purchase
	path := fmt.Sprintf("/purchase/%d", id)
	if slip == nil {
		err := c.putJSON(ctx, path, in, &out)
		return out, err
	}
	err := c.sendMultipart(ctx, "PUT", path, in, "paymentSlip", slipName, slip, &out)
	return out, err
}

// DeletePurchase DELETE /purchase/{id}. Remove também o título a pagar derivado.
func (c *Client) DeletePurchase(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/purchase/%d", id))
}

// PurchasePaymentSlip GET /purchase/{id}/payment-slip — bytes brutos do boleto.
func (c *Client) PurchasePaymentSlip(ctx context.Context, id int64) ([]byte, error) {
	return c.getBlob(ctx, fmt.Sprintf("/purchase/%d/payment-slip", id))
}
