package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Recives lista títulos a receber.
func (c *Client) Recives(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Receivable]] {
	f.DefaultPage()
	return Fetch(ctx, c, NewKey(ResourceRecivesList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Receivable], error) {
		return c.api.ListRecives(ctx, f)
	})
}

// Recive detalhe de um título a receber.
func (c *Client) Recive(ctx context.Context, id int64) Result[entity.Receivable] {
	return Fetch(ctx, c, NewKey(ResourceRecive, id), true, func(ctx context.Context) (entity.Receivable, error) {
		return c.api.GetRecive(ctx, id)
	})
}

// UpdateReciveStatus escreve e invalida a lista de recebíveis e o detalhe do título.
func (c *Client) UpdateReciveStatus(ctx context.Context, id int64, status string) (entity.Receivable, error) {
	return runMutation(ctx, c, "recive-write", id, func(ctx context.Context) (entity.Receivable, error) {
		return c.api.UpdateReciveStatus(ctx, id, status)
	})
}

// PayRecive baixa o título a receber e invalida lista e detalhe.
func (c *Client) PayRecive(ctx context.Context, id int64, in dto.PaymentRequest) (entity.Receivable, error) {
	return runMutation(ctx, c, "recive-write", id, func(ctx context.Context) (entity.Receivable, error) {
		return c.api.PayRecive(ctx, id, in)
	})
}
