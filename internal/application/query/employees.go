package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Employees lista os funcionários.
func (c *Client) Employees(ctx context.Context, f dto.ListFilter) Result[dto.Page[entity.Employee]] {
	f.DefaultPage()
	return Fetch(ctx, c, NewKey(ResourceEmployeesList, f), listActive(f), func(ctx context.Context) (dto.Page[entity.Employee], error) {
		return c.api.ListEmployees(ctx, f)
	})
}

// Employee detalhe de um funcionário.
func (c *Client) Employee(ctx context.Context, id int64) Result[entity.Employee] {
	return Fetch(ctx, c, NewKey(ResourceEmployee, id), true, func(ctx context.Context) (entity.Employee, error) {
		return c.api.GetEmployee(ctx, id)
	})
}

// CreateEmployee escreve e invalida a lista de funcionários.
func (c *Client) CreateEmployee(ctx context.Context, in entity.Employee) (entity.Employee, error) {
	return runMutation(ctx, c, "employee-create", 0, func(ctx context.Context) (entity.Employee, error) {
		return c.api.CreateEmployee(ctx, in)
	})
}

// UpdateEmployee escreve e invalida lista e detalhe.
func (c *Client) UpdateEmployee(ctx context.Context, id int64, in entity.Employee) (entity.Employee, error) {
	return runMutation(ctx, c, "employee-update", id, func(ctx context.Context) (entity.Employee, error) {
		return c.api.UpdateEmployee(ctx, id, in)
	})
}

// DeleteEmployee escreve e invalida a lista.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	_, err := runMutation(ctx, c, "employee-delete", id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.api.DeleteEmployee(ctx, id)
	})
	return err
}
