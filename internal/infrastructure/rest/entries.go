package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ListEntries GET /entry — lançamentos manuais do livro-caixa.
func (c *Client) ListEntries(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Entry], error) {
	var out dto.Page[entity.Entry]
	err := c.get(ctx, "/entry", listValues(f), &out)
	return out, err
}

// GetEntry GET /entry/{id}.
func (c *Client) GetEntry(ctx context.Context, id int64) (entity.Entry, error) {
	var out entity.Entry
	err := c.get(ctx, fmt.Sprintf("/entry/%d", id), nil, &out)
	return out, err
}

// CreateEntry POST /entry.
func (c *Client) CreateEntry(ctx context.Context, in entity.Entry) (entity.Entry, error) {
	var out entity.Entry
	err := c.postJSON(ctx, "/entry", in, &out)
	return out, err
}

// UpdateEntry PUT /entry/{id}.
func (c *Client) UpdateEntry(ctx context.Context, id int64, in entity.Entry) (entity.Entry, error) {
	var out entity.Entry
	err := c.putJSON(ctx, fmt.Sprintf("/entry/%d", id), in, &out)
	return out, err
}

// DeleteEntry DELETE /entry/{id}.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/entry/%d", id))
}
