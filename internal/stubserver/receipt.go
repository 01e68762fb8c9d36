// Geração dos recibos em PDF servidos pelo stub.
//
// Layout A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: EcoGest Reciclagem │ Nº + Data      │
//	│  ──────────────────────────────────────────  │
//	│  CLIENTE: nome + documento                   │
//	│  ──────────────────────────────────────────  │
//	│  TABELA: Qtd (kg) | Material | Unit | Subtot │
//	│  ──────────────────────────────────────────  │
//	│  TOTAIS: Desconto / TOTAL                    │
//	└──────────────────────────────────────────────┘
package stubserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const companyName = "EcoGest Reciclagem"

func newReceiptDoc(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(companyName, true).
		Build()
	return maroto.New(cfg)
}

// saleReceiptPDF monta o recibo de venda e devolve os bytes do PDF.
func saleReceiptPDF(s entity.Sale) ([]byte, error) {
	m := newReceiptDoc("Recibo de Venda")

	m.AddRows(headerRow("RECIBO DE VENDA", s.ID, s.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("CLIENTE", s.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(s.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(s.Discount.StringFixed(2), s.TotalPrice.StringFixed(2)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("recibo: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// productReceiptPDF ficha do material com preço vigente.
func productReceiptPDF(p entity.Product) ([]byte, error) {
	m := newReceiptDoc("Ficha de Material")

	m.AddRows(headerRow("FICHA DE MATERIAL", p.ID, ""))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(16).Add(
		col.New(12).Add(
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 12, Top: 1}),
			text.New(fmt.Sprintf("Preço por kg: R$ %s   |   Estoque: %s kg",
				p.Price.StringFixed(2), p.WeightAmount.StringFixed(0)),
				props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("recibo: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, id int64, date string) core.Row {
	right := []core.Component{
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
		text.New(fmt.Sprintf("Nº %06d", id), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
		}),
	}
	if date != "" {
		right = append(right, text.New("Data: "+date, props.Text{
			Size: 8, Align: align.Right, Top: 14, Color: colorGray,
		}))
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestão de compra e venda de recicláveis", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(right...),
	)
}

func partyRow(label string, p *entity.Person) core.Row {
	name, doc := "—", "—"
	if p != nil {
		name = p.Name
		if p.Document != "" {
			doc = p.Document
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Documento: "+doc, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd (kg)", 2, align.Center),
		h("Material", 5, align.Left),
		h("Preço/kg", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := fmt.Sprintf("material %d", it.ProductID)
		if it.Product != nil {
			name = it.Product.Name
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+it.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+it.Subtotal().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(discount, total string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 6,
		})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Desconto:"),
			grand("TOTAL:"),
		),
		col.New(3).Add(
			text.New("R$ "+discount, props.Text{Size: 9, Align: align.Right, Right: 1}),
			grand("R$ "+total),
		),
	)
}

// getSaleReceipt GET /sale/{id}/receipt.
func getSaleReceipt(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		s, ok := d.sales[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "venda não encontrada")
		}
		pdf, err := saleReceiptPDF(s)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(pdf)
	}
}

// getProductReceipt GET /product/{id}/receipt.
func getProductReceipt(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "id inválido")
		}
		d.mu.Lock()
		p, ok := d.products[id]
		d.mu.Unlock()
		if !ok {
			return notFound(c, "produto não encontrado")
		}
		pdf, err := productReceiptPDF(p)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(pdf)
	}
}
