package stubserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

func listProducts(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.products, func(x entity.Product) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Product, 0, len(all))
		for _, x := range all {
			if nameMatches(x.Name, p.Name) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getProduct(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.products[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "produto não encontrado")
		}
		return c.JSON(x)
	}
}

func createProduct(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in entity.Product
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		if in.Name == "" {
			return badRequest(c, "name é obrigatório")
		}
		d.mu.Lock()
		in.ID = d.next("product")
		d.products[in.ID] = in
		d.mu.Unlock()
		return c.Status(fiber.StatusCreated).JSON(in)
	}
}

func updateProduct(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in entity.Product
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.products[id]; !ok {
			return notFound(c, "produto não encontrado")
		}
		in.ID = id
		d.products[id] = in
		return c.JSON(in)
	}
}

func deleteProduct(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.products[id]; !ok {
			return notFound(c, "produto não encontrado")
		}
		delete(d.products, id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
