package rest

import (
	"context"
	"fmt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ListEmployees GET /employee.
func (c *Client) ListEmployees(ctx context.Context, f dto.ListFilter) (dto.Page[entity.Employee], error) {
	var out dto.Page[entity.Employee]
	err := c.get(ctx, "/employee", listValues(f), &out)
	return out, err
}

// GetEmployee GET /employee/{id}.
func (c *Client) GetEmployee(ctx context.Context, id int64) (entity.Employee, error) {
	var out entity.Employee
	err := c.get(ctx, fmt.Sprintf("/employee/%d", id), nil, &out)
	return out, err
}

// CreateEmployee POST /employee.
func (c *Client) CreateEmployee(ctx context.Context, in entity.Employee) (entity.Employee, error) {
	var out entity.Employee
	err := c.postJSON(ctx, "/employee", in, &out)
	return out, err
}

// UpdateEmployee PUT /employee/{id}.
func (c *Client) UpdateEmployee(ctx context.Context, id int64, in entity.Employee) (entity.Employee, error) {
	var out entity.Employee
	err := c.putJSON(ctx, fmt.Sprintf("/employee/%d", id), in, &out)
	return out, err
}

// DeleteEmployee DELETE /employee/{id}.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/employee/%d", id))
}
