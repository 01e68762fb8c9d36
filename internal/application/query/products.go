package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Products lista os materiais cadastrados.
func (c *Client) Products(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Product]] {
	f.DefaultPage()
	return Fetch(ctx, c, NewKey(ResourceProductsList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Product], error) {
		return c.api.ListProducts(ctx, f)
	})
}

// Product detalhe de um material.
func (c *Client) Product(ctx context.Context, id int64) Result[entity.Product] {
	return Fetch(ctx, c, NewKey(ResourceProduct, id), true, func(ctx context.Context) (entity.Product, error) {
		return c.api.GetProduct(ctx, id)
	})
}

// CreateProduct escreve e invalida a lista de produtos.
func (c *Client) CreateProduct(ctx context.Context, in entity.Product) (entity.Product, error) {
	return runMutation(ctx, c, "product-create", 0, func(ctx context.Context) (entity.Product, error) {
		return c.api.CreateProduct(ctx, in)
	})
}

// UpdateProduct escreve e invalida lista e detalhe.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in entity.Product) (entity.Product, error) {
	return runMutation(ctx, c, "product-update", id, func(ctx context.Context) (entity.Product, error) {
		return c.api.UpdateProduct(ctx, id, in)
	})
}

// DeleteProduct escreve e invalida a lista.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := runMutation(ctx, c, "product-delete", id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.api.DeleteProduct(ctx, id)
	})
	return err
}
