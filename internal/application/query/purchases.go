package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/domain/finance"
)

// Purchases lista compras, com conferência de total como nas vendas.
func (c *Client) Purchases(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Purchase]] {
	f.DefaultPage()
	res := Fetch(ctx, c, NewKey(ResourcePurchasesList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Purchase], error) {
		return c.api.ListPurchases(ctx, f)
	})
	if res.OK() && !res.FromCache {
		for _, p := range res.Data.Data {
			c.warnOnPurchaseDrift(p)
		}
	}
	return res
}

// Purchase detalhe de uma compra.
func (c *Client) Purchase(ctx context.Context, id int64) Result[entity.Purchase] {
	res := Fetch(ctx, c, NewKey(ResourcePurchase, id), true, func(ctx context.Context) (entity.Purchase, error) {
		return c.api.GetPurchase(ctx, id)
	})
	if res.OK() && !res.FromCache {
		c.warnOnPurchaseDrift(res.Data)
	}
	return res
}

// CreatePurchase escreve e invalida compras e pagáveis: o backend gera o
// título a pagar junto com a compra. slip opcional é o boleto anexado.
func (c *Client) CreatePurchase(ctx context.Context, in dto.CreatePurchaseRequest, slip []byte, slipName string) (entity.Purchase, error) {
	return runMutation(ctx, c, "purchase-create", 0, func(ctx context.Context) (entity.Purchase, error) {
		return c.api.CreatePurchase(ctx, in, slip, slipName)
	})
}

// UpdatePurchase escreve e invalida compras e pagáveis.
func (c *Client) UpdatePurchase(ctx context.Context, id int64, in dto.UpdatePurchaseRequest, slip []byte, slipName string) (entity.Purchase, error) {
	return runMutation(ctx, c, "purchase-update", id, func(ctx context.Context) (entity.Purchase, error) {
		return c.api.UpdatePurchase(ctx, id, in, slip, slipName)
	})
}

// DeletePurchase escreve e invalida compras e pagáveis.
func (c *Client) DeletePurchase(ctx context.Context, id int64) error {
	_, err := runMutation(ctx, c, "purchase-delete", id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.api.DeletePurchase(ctx, id)
	})
	return err
}

func (c *Client) warnOnPurchaseDrift(p entity.Purchase) {
	if len(p.Items) == 0 {
		return
	}
	if err := finance.CheckPurchase(p); err != nil {
		c.log.Warn().Int64("purchaseId", p.ID).Err(err).Msg("total da compra diverge da soma dos itens")
	}
}
