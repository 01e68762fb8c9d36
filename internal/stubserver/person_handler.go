package stubserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

func listPersons(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.persons, func(x entity.Person) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Person, 0, len(all))
		for _, x := range all {
			if nameMatches(x.Name, p.Name) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getPerson(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.persons[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "pessoa não encontrada")
		}
		return c.JSON(x)
	}
}

func createPerson(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in entity.Person
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		if in.Name == "" || (in.Type != entity.PersonTypeCustomer && in.Type != entity.PersonTypeSupplier) {
			return badRequest(c, "name e type (customer|supplier) são obrigatórios")
		}
		d.mu.Lock()
		in.ID = d.next("person")
		d.persons[in.ID] = in
		d.mu.Unlock()
		return c.Status(fiber.StatusCreated).JSON(in)
	}
}

func updatePerson(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in entity.Person
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.persons[id]; !ok {
			return notFound(c, "pessoa não encontrada")
		}
		in.ID = id
		d.persons[id] = in
		return c.JSON(in)
	}
}

func deletePerson(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.persons[id]; !ok {
			return notFound(c, "pessoa não encontrada")
		}
		delete(d.persons, id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Respostas de erro padronizadas do stub.

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}
