package stubserver

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/domain/finance"
)

func listSales(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.sales, func(x entity.Sale) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Sale, 0, len(all))
		for _, x := range all {
			if p.inPeriod(x.Date) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getSale(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.sales[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "venda não encontrada")
		}
		return c.JSON(x)
	}
}

// createSale cria a venda e, junto, o título a receber — o mesmo acoplamento
// do backend que justifica a invalidação cruzada no cliente.
func createSale(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateSaleRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		sale, vencimento, errMsg := d.buildSale(in)
		if errMsg != "" {
			return badRequest(c, errMsg)
		}

		d.mu.Lock()
		sale.ID = d.next("sale")
		d.sales[sale.ID] = sale

		saleID := sale.ID
		rec := entity.Receivable{
			ID:             d.next("recive"),
			Status:         finance.DeriveStatus(vencimento, nil, time.Now()),
			DataEmissao:    sale.Date,
			DataVencimento: vencimento,
			TotalValue:     sale.TotalPrice,
			SaleID:         &saleID,
		}
		d.recives[rec.ID] = rec
		d.mu.Unlock()

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

func updateSale(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		var in dto.UpdateSaleRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corpo inválido")
		}
		sale, _, errMsg := d.buildSale(dto.CreateSaleRequest{
			PersonID: in.PersonID,
			Products: in.Products,
			Discount: in.Discount,
			Date:     in.Date,
			NFe:      in.NFe,
			// vencimento do título original não muda em updates
			DataVencimento: dateLayoutZero,
		})
		if errMsg != "" {
			return badRequest(c, errMsg)
		}

		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.sales[id]; !ok {
			return notFound(c, "venda não encontrada")
		}
		sale.ID = id
		d.sales[id] = sale

		// Mantém o título derivado coerente com o novo total.
		for rid, r := range d.recives {
			if r.SaleID != nil && *r.SaleID == id {
				r.TotalValue = sale.TotalPrice
				d.recives[rid] = r
			}
		}
		return c.JSON(sale)
	}
}

func deleteSale(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.sales[id]; !ok {
			return notFound(c, "venda não encontrada")
		}
		delete(d.sales, id)
		for rid, r := range d.recives {
			if r.SaleID != nil && *r.SaleID == id {
				delete(d.recives, rid)
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// dateLayoutZero data sentinela para updates (vencimento não se altera).
const dateLayoutZero = "0001-01-01"

// buildSale valida o payload e monta a venda com total calculado no servidor.
// Devolve mensagem de erro vazia em sucesso.
func (d *Dataset) buildSale(in dto.CreateSaleRequest) (entity.Sale, time.Time, string) {
	if len(in.Products) == 0 {
		return entity.Sale{}, time.Time{}, "products não pode ser vazio"
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return entity.Sale{}, time.Time{}, "date_time inválido (YYYY-MM-DD)"
	}
	vencimento, err := parseDate(in.DataVencimento)
	if err != nil {
		return entity.Sale{}, time.Time{}, "dataVencimento inválido (YYYY-MM-DD)"
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	person, ok := d.persons[in.PersonID]
	if !ok {
		return entity.Sale{}, time.Time{}, "personId não cadastrado"
	}
	items := make([]entity.LineItem, 0, len(in.Products))
	for _, it := range in.Products {
		prod, ok := d.products[it.ProductID]
		if !ok {
			return entity.Sale{}, time.Time{}, "productId não cadastrado"
		}
		prodCopy := prod
		items = append(items, entity.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Product:   &prodCopy,
		})
	}
	personCopy := person
	return entity.Sale{
		CustomerID: in.PersonID,
		Customer:   &personCopy,
		Date:       date,
		Items:      items,
		Discount:   in.Discount,
		TotalPrice: finance.ItemsTotal(items).Sub(in.Discount),
		NFe:        in.NFe,
	}, vencimento, ""
}
