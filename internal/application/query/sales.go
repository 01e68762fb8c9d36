package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/domain/finance"
)

// Sales lista vendas. O total de cada registro é conferido contra a soma dos
// itens antes de chegar à tela; divergência vira log de aviso, expondo drift
// do backend sem bloquear a exibição.
func (c *Client) Sales(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Sale]] {
	f.DefaultPage()
	res := Fetch(ctx, c, NewKey(ResourceSalesList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Sale], error) {
		return c.api.ListSales(ctx, f)
	})
	if res.OK() && !res.FromCache {
		for _, s := range res.Data.Data {
			c.warnOnSaleDrift(s)
		}
	}
	return res
}

// Sale detalhe de uma venda, com a mesma conferência de total.
func (c *Client) Sale(ctx context.Context, id int64) Result[entity.Sale] {
	res := Fetch(ctx, c, NewKey(ResourceSale, id), true, func(ctx context.Context) (entity.Sale, error) {
		return c.api.GetSale(ctx, id)
	})
	if res.OK() && !res.FromCache {
		c.warnOnSaleDrift(res.Data)
	}
	return res
}

// CreateSale escreve e invalida vendas e recebíveis: o backend gera o título
// a receber junto com a venda.
func (c *Client) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (entity.Sale, error) {
	return runMutation(ctx, c, "sale-create", 0, func(ctx context.Context) (entity.Sale, error) {
		return c.api.CreateSale(ctx, in)
	})
}

// UpdateSale escreve e invalida vendas e recebíveis.
func (c *Client) UpdateSale(ctx context.Context, id int64, in dto.UpdateSaleRequest) (entity.Sale, error) {
	return runMutation(ctx, c, "sale-update", id, func(ctx context.Context) (entity.Sale, error) {
		return c.api.UpdateSale(ctx, id, in)
	})
}

// DeleteSale escreve e invalida vendas e recebíveis.
func (c *Client) DeleteSale(ctx context.Context, id int64) error {
	_, err := runMutation(ctx, c, "sale-delete", id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.api.DeleteSale(ctx, id)
	})
	return err
}

func (c *Client) warnOnSaleDrift(s entity.Sale) {
	if len(s.Items) == 0 {
		return
	}
	if err := finance.CheckSale(s); err != nil {
		c.log.Warn().Int64("saleId", s.ID).Err(err).Msg("total da venda diverge da soma dos itens")
	}
}
