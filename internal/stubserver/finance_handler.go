package stubserver

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Handlers dos títulos a pagar e a receber (rotas /payble e /recive, nas
// grafias históricas do contrato). Status não é livremente editável:
// Pago exige data de pagamento registrada.

func listPaybles(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.paybles, func(x entity.Payable) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Payable, 0, len(all))
		for _, x := range all {
			if p.inPeriod(x.DataVencimento) && (p.Status == "" || p.Status == x.Status) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getPayble(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.paybles[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "título a pagar não encontrado")
		}
		return c.JSON(x)
	}
}

func updatePaybleStatus(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in dto.UpdateStatusRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		x, ok := d.paybles[id]
		if !ok {
			return notFound(c, "título a pagar não encontrado")
		}
		if msg := applyStatus(&x.Status, x.DataPagamento, in.Status); msg != "" {
			return badRequest(c, msg)
		}
		d.paybles[id] = x
		return c.JSON(x)
	}
}

func payPayble(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in dto.PaymentRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		pagamento, err := parseDate(in.DataPagamento)
		if err != nil {
			return badRequest(c, "dataPagamento inválida (YYYY-MM-DD)")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		x, ok := d.paybles[id]
		if !ok {
			return notFound(c, "título a pagar não encontrado")
		}
		x.DataPagamento = &pagamento
		x.PayedValue = in.PayedValue
		if x.PayedValue.IsZero() {
			x.PayedValue = x.TotalValue
		}
		x.Status = entity.StatusPago
		d.paybles[id] = x
		return c.JSON(x)
	}
}

func listRecives(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.recives, func(x entity.Receivable) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Receivable, 0, len(all))
		for _, x := range all {
			if p.inPeriod(x.DataVencimento) && (p.Status == "" || p.Status == x.Status) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getRecive(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.recives[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "título a receber não encontrado")
		}
		return c.JSON(x)
	}
}

func updateReciveStatus(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in dto.UpdateStatusRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		x, ok := d.recives[id]
		if !ok {
			return notFound(c, "título a receber não encontrado")
		}
		if msg := applyStatus(&x.Status, x.DataPagamento, in.Status); msg != "" {
			return badRequest(c, msg)
		}
		d.recives[id] = x
		return c.JSON(x)
	}
}

func payRecive(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in dto.PaymentRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		pagamento, err := parseDate(in.DataPagamento)
		if err != nil {
			return badRequest(c, "dataPagamento inválida (YYYY-MM-DD)")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		x, ok := d.recives[id]
		if !ok {
			return notFound(c, "título a receber não encontrado")
		}
		x.DataPagamento = &pagamento
		x.PayedValue = in.PayedValue
		if x.PayedValue.IsZero() {
			x.PayedValue = x.TotalValue
		}
		x.Status = entity.StatusPago
		d.recives[id] = x
		return c.JSON(x)
	}
}

// applyStatus valida a transição de status pedida contra as datas do título.
func applyStatus(current *string, pagamento *time.Time, next string) string {
	switch next {
	case entity.StatusAberto, entity.StatusAtrasado:
		*current = next
		return ""
	case entity.StatusPago:
		// A baixa acontece pelo endpoint de payment; marcar Pago sem data
		// de pagamento violaria a regra do título.
		if pagamento == nil {
			return "status Pago exige baixa com dataPagamento"
		}
		*current = next
		return ""
	default:
		return "status deve ser Aberto, Pago ou Atrasado"
	}
}
