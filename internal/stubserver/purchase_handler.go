package stubserver

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/domain/finance"
)

func listPurchases(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseListParams(c)
		d.mu.Lock()
		all := sortedValues(d.purchases, func(x entity.Purchase) int64 { return x.ID })
		d.mu.Unlock()

		filtered := make([]entity.Purchase, 0, len(all))
		for _, x := range all {
			if p.inPeriod(x.Date) {
				filtered = append(filtered, x)
			}
		}
		return c.JSON(paginate(filtered, p))
	}
}

func getPurchase(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		x, ok := d.purchases[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "compra não encontrada")
		}
		return c.JSON(x)
	}
}

// createPurchase cria a compra e o título a pagar derivado. Aceita JSON puro
// ou multipart com o JSON no campo "data" e o boleto em "paymentSlip".
func createPurchase(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, slip, errMsg := parsePurchaseBody(c)
		if errMsg != "" {
			return badRequest(c, errMsg)
		}
		purchase, vencimento, errMsg := d.buildPurchase(in)
		if errMsg != "" {
			return badRequest(c, errMsg)
		}
		purchase.HasPaymentSlip = slip != nil

		d.mu.Lock()
		purchase.ID = d.next("purchase")
		d.purchases[purchase.ID] = purchase
		if slip != nil {
			d.slips[purchase.ID] = slip
		}

		purchaseID := purchase.ID
		pay := entity.Payable{
			ID:             d.next("payble"),
			Status:         finance.DeriveStatus(vencimento, nil, time.Now()),
			DataEmissao:    purchase.Date,
			DataVencimento: vencimento,
			TotalValue:     purchase.TotalPrice,
			PurchaseID:     &purchaseID,
		}
		d.paybles[pay.ID] = pay
		d.mu.Unlock()

		return c.Status(fiber.StatusCreated).JSON(purchase)
	}
}

func updatePurchase(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		in, slip, errMsg := parsePurchaseBody(c)
		if errMsg != "" {
			return badRequest(c, errMsg)
		}
		if in.DataVencimento == "" {
			in.DataVencimento = dateLayoutZero
		}
		purchase, _, errMsg := d.buildPurchase(in)
		if errMsg != "" {
			return badRequest(c, errMsg)
		}

		d.mu.Lock()
		defer d.mu.Unlock()
		prev, ok := d.purchases[id]
		if !ok {
			return notFound(c, "compra não encontrada")
		}
		purchase.ID = id
		purchase.HasPaymentSlip = prev.HasPaymentSlip || slip != nil
		d.purchases[id] = purchase
		if slip != nil {
			d.slips[id] = slip
		}

		for pid, p := range d.paybles {
			if p.PurchaseID != nil && *p.PurchaseID == id {
				p.TotalValue = purchase.TotalPrice
				d.paybles[pid] = p
			}
		}
		return c.JSON(purchase)
	}
}

func deletePurchase(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.purchases[id]; !ok {
			return notFound(c, "compra não encontrada")
		}
		delete(d.purchases, id)
		delete(d.slips, id)
		for pid, p := range d.paybles {
			if p.PurchaseID != nil && *p.PurchaseID == id {
				delete(d.paybles, pid)
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// getPaymentSlip GET /purchase/{id}/payment-slip — devolve o boleto bruto,
// sem Content-Type específico; o cliente classifica pelo conteúdo.
func getPaymentSlip(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		slip, ok := d.slips[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "compra sem boleto")
		}
		c.Set(fiber.HeaderContentType, "application/octet-stream")
		return c.Send(slip)
	}
}

// parsePurchaseBody decodifica JSON puro ou multipart (campo "data" + arquivo
// "paymentSlip"). Devolve o boleto quando anexado.
func parsePurchaseBody(c *fiber.Ctx) (dto.CreatePurchaseRequest, []byte, string) {
	var in dto.CreatePurchaseRequest
	contentType := c.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, "multipart/") {
		if err := c.BodyParser(&in); err != nil {
			return in, nil, "corpo inválido"
		}
		return in, nil, ""
	}

	form, err := c.MultipartForm()
	if err != nil {
		return in, nil, "multipart inválido"
	}
	data := form.Value["data"]
	if len(data) == 0 {
		return in, nil, "campo data ausente"
	}
	if err := json.Unmarshal([]byte(data[0]), &in); err != nil {
		return in, nil, "campo data inválido"
	}
	files := form.File["paymentSlip"]
	if len(files) == 0 {
		return in, nil, ""
	}
	f, err := files[0].Open()
	if err != nil {
		return in, nil, "boleto ilegível"
	}
	defer f.Close()
	slip, err := io.ReadAll(f)
	if err != nil {
		return in, nil, "boleto ilegível"
	}
	return in, slip, ""
}

// buildPurchase espelha buildSale para compras.
func (d *Dataset) buildPurchase(in dto.CreatePurchaseRequest) (entity.Purchase, time.Time, string) {
	if len(in.Products) == 0 {
		return entity.Purchase{}, time.Time{}, "products não pode ser vazio"
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return entity.Purchase{}, time.Time{}, "date_time inválido (YYYY-MM-DD)"
	}
	vencimento, err := parseDate(in.DataVencimento)
	if err != nil {
		return entity.Purchase{}, time.Time{}, "dataVencimento inválido (YYYY-MM-DD)"
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	person, ok := d.persons[in.PersonID]
	if !ok {
		return entity.Purchase{}, time.Time{}, "personId não cadastrado"
	}
	items := make([]entity.LineItem, 0, len(in.Products))
	for _, it := range in.Products {
		prod, ok := d.products[it.ProductID]
		if !ok {
			return entity.Purchase{}, time.Time{}, "productId não cadastrado"
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
	return entity.Purchase{
		SupplierID: in.PersonID,
		Supplier:   &personCopy,
		Date:       date,
		Items:      items,
		Discount:   in.Discount,
		TotalPrice: finance.ItemsTotal(items).Sub(in.Discount),
		NFe:        in.NFe,
	}, vencimento, ""
}
