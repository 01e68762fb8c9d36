package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Persons lista clientes e fornecedores. Buscas por nome compartilham o
// recurso da lista: parâmetros diferentes geram chaves distintas e a
// invalidação por recurso alcança todas.
func (c *Client) Persons(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Person]] {
	f.DefaultPage()
	return Fetch(ctx, c, NewKey(ResourcePersonsList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Person], error) {
		return c.api.ListPersons(ctx, f)
	})
}

// Person detalhe de uma pessoa.
func (c *Client) Person(ctx context.Context, id int64) Result[entity.Person] {
	return Fetch(ctx, c, NewKey(ResourcePerson, id), true, func(ctx context.Context) (entity.Person, error) {
		return c.api.GetPerson(ctx, id)
	})
}

// CreatePerson escreve e invalida a lista de pessoas.
func (c *Client) CreatePerson(ctx context.Context, in entity.Person) (entity.Person, error) {
	return runMutation(ctx, c, "person-create", 0, func(ctx context.Context) (entity.Person, error) {
		return c.api.CreatePerson(ctx, in)
	})
}

// UpdatePerson escreve e invalida lista e detalhe.
func (c *Client) UpdatePerson(ctx context.Context, id int64, in entity.Person) (entity.Person, error) {
	return runMutation(ctx, c, "person-update", id, func(ctx context.Context) (entity.Person, error) {
		return c.api.UpdatePerson(ctx, id, in)
	})
}

// DeletePerson escreve e invalida a lista.
func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	_, err := runMutation(ctx, c, "person-delete", id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.api.DeletePerson(ctx, id)
	})
	return err
}
