package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Paybles lista títulos a pagar. Filtros de período e status seguem o
// contrato comum; stale após escrita em compras ou baixas de pagável.
func (c *Client) Paybles(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Payable]] {
	f.DefaultPage()
	return Fetch(ctx, c, NewKey(ResourcePayblesList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Payable], error) {
		return c.api.ListPaybles(ctx, f)
	})
}

// Payble detalhe de um título a pagar.
func (c *Client) Payble(ctx context.Context, id int64) Result[entity.Payable] {
	return Fetch(ctx, c, NewKey(ResourcePayble, id), true, func(ctx context.Context) (entity.Payable, error) {
		return c.api.GetPayble(ctx, id)
	})
}

// UpdatePaybleStatus escreve e invalida a lista de pagáveis e o detalhe do título.
func (c *Client) UpdatePaybleStatus(ctx context.Context, id int64, status string) (entity.Payable, error) {
	return runMutation(ctx, c, "payable-write", id, func(ctx context.Context) (entity.Payable, error) {
		return c.api.UpdatePaybleStatus(ctx, id, status)
	})
}

// PayPayble baixa o título (data de pagamento + valor) e invalida lista e detalhe.
func (c *Client) PayPayble(ctx context.Context, id int64, in dto.PaymentRequest) (entity.Payable, error) {
	return runMutation(ctx, c, "payable-write", id, func(ctx context.Context) (entity.Payable, error) {
		return c.api.PayPayble(ctx, id, in)
	})
}
