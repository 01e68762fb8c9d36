package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ListPersons GET /person — clientes e fornecedores, paginado e filtrável.
func (c *Client) ListPersons(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Person], error) {
	var out dto.Page[entity.Person]
	err := c.get(ctx, "/person", listValues(f), &out)
	return out, err
}

// GetPerson GET /person/{id}.
func (c *Client) GetPerson(ctx context.Context, id int64) (entity.Person, error) {
	var out entity.Person
	err := c.get(ctx, fmt.Sprintf("/person/%d", id), nil, &out)
	return out, err
}

// CreatePerson POST /person.
func (c *Client) CreatePerson(ctx context.Context, in entity.Person) (entity.Person, error) {
	var out entity.Person
	err := c.postJSON(ctx, "/person", in, &out)
	return out, err
}

// UpdatePerson PUT /person/{id}.
func (c *Client) UpdatePerson(ctx context.Context, id int64, in entity.Person) (entity.Person, error) {
	var out entity.Person
	err := c.putJSON(ctx, fmt.Sprintf("/person/%d", id), in, &out)
	return out, err
}

// DeletePerson DELETE /person/{id}.
func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/person/%d", id))
}
