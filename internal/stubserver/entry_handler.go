package stubserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

func listEntries(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.entries, func(x entity.Entry) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Entry, 0, len(all))
		for _, x := range all {
			if p.inPeriod(x.Date) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getEntry(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.entries[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "lançamento não encontrado")
		}
		return c.JSON(x)
	}
}

func createEntry(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in entity.Entry
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		if in.Type != entity.EntryTypeGain && in.Type != entity.EntryTypeLoss {
			return badRequest(c, "type deve ser gain ou loss")
		}
		d.mu.Lock()
		in.ID = d.next("entry")
		d.entries[in.ID] = in
		d.mu.Unlock()
		return c.Status(fiber.StatusCreated).JSON(in)
	}
}

func updateEntry(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in entity.Entry
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.entries[id]; !ok {
			return notFound(c, "lançamento não encontrado")
		}
		in.ID = id
		d.entries[id] = in
		return c.JSON(in)
	}
}

func deleteEntry(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.entries[id]; !ok {
			return notFound(c, "lançamento não encontrado")
		}
		delete(d.entries, id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
