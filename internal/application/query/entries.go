package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Entries lista os lançamentos manuais do livro-caixa.
func (c *Client) Entries(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Entry]] {
	f.DefaultPage()
	return Fetch(ctx, c, NewKey(ResourceEntriesList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Entry], error) {
		return c.api.ListEntries(ctx, f)
	})
}

// Entry detalhe de um lançamento.
func (c *Client) Entry(ctx context.Context, id int64) Result[entity.Entry] {
	return Fetch(ctx, c, NewKey(ResourceEntry, id), true, func(ctx context.Context) (entity.Entry, error) {
		return c.api.GetEntry(ctx, id)
	})
}

// CreateEntry escreve e invalida a lista de lançamentos.
func (c *Client) CreateEntry(ctx context.Context, in entity.Entry) (entity.Entry, error) {
	return runMutation(ctx, c, "entry-create", 0, func(ctx context.Context) (entity.Entry, error) {
		return c.api.CreateEntry(ctx, in)
	})
}

// UpdateEntry escreve e invalida lista e detalhe.
func (c *Client) UpdateEntry(ctx context.Context, id int64, in entity.Entry) (entity.Entry, error) {
	return runMutation(ctx, c, "entry-update", id, func(ctx context.Context) (entity.Entry, error) {
		return c.api.UpdateEntry(ctx, id, in)
	})
}

// DeleteEntry escreve e invalida a lista.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	_, err := runMutation(ctx, c, "entry-delete", id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.api.DeleteEntry(ctx, id)
	})
	return err
}
