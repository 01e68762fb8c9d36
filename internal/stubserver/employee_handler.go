package stubserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

func listEmployees(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.employees, func(x entity.Employee) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Employee, 0, len(all))
		for _, x := range all {
			if nameMatches(x.Name, p.Name) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getEmployee(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.employees[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "funcionário não encontrado")
		}
		return c.JSON(x)
	}
}

func createEmployee(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in entity.Employee
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		if in.Name == "" || in.Registration == "" {
			return badRequest(c, "name e registration são obrigatórios")
		}
		d.mu.Lock()
		in.ID = d.next("employee")
		d.employees[in.ID] = in
		d.mu.Unlock()
		return c.Status(fiber.StatusCreated).JSON(in)
	}
}

func updateEmployee(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in entity.Employee
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.employees[id]; !ok {
			return notFound(c, "funcionário não encontrado")
		}
		in.ID = id
		d.employees[id] = in
		return c.JSON(in)
	}
}

func deleteEmployee(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.employees[id]; !ok {
			return notFound(c, "funcionário não encontrado")
		}
		delete(d.employees, id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
