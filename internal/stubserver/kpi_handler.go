package stubserver

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// Visões de indicadores. Os agregados saem prontos daqui; o cliente só exibe.
// Ganhos = vendas + lançamentos gain; perdas = compras + lançamentos loss.

type kpiParams struct {
	Year      int
	Month     int
	PersonID  *int64
	ProductID *int64
}

func parseKPIParams(c *fiber.Ctx) kpiParams {
	p := kpiParams{}
	p.Year, _ = strconv.Atoi(c.Query("year"))
	p.Month, _ = strconv.Atoi(c.Query("month"))
	if v, err := strconv.ParseInt(c.Query("personId"), 10, 64); err == nil {
		p.PersonID = &v
	}
	if v, err := strconv.ParseInt(c.Query("productId"), 10, 64); err == nil {
		p.ProductID = &v
	}
	return p
}

// movement um evento datado que soma no fluxo de caixa.
type movement struct {
	date  time.Time
	value decimal.Decimal
	gain  bool
}

// movements achata vendas, compras e lançamentos nos filtros pedidos.
// Chamar com d.mu retido.
func (d *Dataset) movements(p kpiParams) []movement {
	var out []movement
	for _, s := range d.sales {
		if p.PersonID != nil && s.CustomerID != *p.PersonID {
			continue
		}
		if p.ProductID != nil && !hasProduct(s.Items, *p.ProductID) {
			continue
		}
		out = append(out, movement{date: s.Date, value: s.TotalPrice, gain: true})
	}
	for _, pc := range d.purchases {
		if p.PersonID != nil && pc.SupplierID != *p.PersonID {
			continue
		}
		if p.ProductID != nil && !hasProduct(pc.Items, *p.ProductID) {
			continue
		}
		out = append(out, movement{date: pc.Date, value: pc.TotalPrice})
	}
	// Lançamentos avulsos não têm pessoa nem produto; só entram sem filtro.
	if p.PersonID == nil && p.ProductID == nil {
		for _, e := range d.entries {
			out = append(out, movement{date: e.Date, value: e.Value, gain: e.Type == entity.EntryTypeGain})
		}
	}
	return out
}

func hasProduct(items []entity.LineItem, productID int64) bool {
	for _, it := range items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func cashFlowMonthly(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseKPIParams(c)
		if p.Year == 0 {
			return badRequest(c, "year é obrigatório")
		}
		d.mu.Lock()
		moves := d.movements(p)
		d.mu.Unlock()

		report := dto.CashFlowReport{Year: p.Year, Buckets: make([]dto.CashFlowBucket, 12)}
		for i := range report.Buckets {
			report.Buckets[i].Period = i + 1
		}
		for _, m := range moves {
			if m.date.Year() != p.Year {
				continue
			}
			addToBucket(&report.Buckets[int(m.date.Month())-1], m)
		}
		closeBuckets(report.Buckets)
		return c.JSON(report)
	}
}

func cashFlowDaily(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseKPIParams(c)
		if p.Year == 0 || p.Month < 1 || p.Month > 12 {
			return badRequest(c, "year e month são obrigatórios")
		}
		d.mu.Lock()
		moves := d.movements(p)
		d.mu.Unlock()

		days := time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		report := dto.CashFlowReport{Year: p.Year, Month: p.Month, Buckets: make([]dto.CashFlowBucket, days)}
		for i := range report.Buckets {
			report.Buckets[i].Period = i + 1
		}
		for _, m := range moves {
			if m.date.Year() != p.Year || int(m.date.Month()) != p.Month {
				continue
			}
			addToBucket(&report.Buckets[m.date.Day()-1], m)
		}
		closeBuckets(report.Buckets)
		return c.JSON(report)
	}
}

func addToBucket(b *dto.CashFlowBucket, m movement) {
	if m.gain {
		b.Gains = b.Gains.Add(m.value)
	} else {
		b.Losses = b.Losses.Add(m.value)
	}
}

func closeBuckets(buckets []dto.CashFlowBucket) {
	for i := range buckets {
		buckets[i].Balance = buckets[i].Gains.Sub(buckets[i].Losses)
	}
}

// balance saldo projetado (tudo emitido) versus realizado (títulos pagos).
func balance(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := parseKPIParams(c)
		d.mu.Lock()
		defer d.mu.Unlock()

		var out dto.BalanceSummary
		for _, r := range d.recives {
			if p.Year != 0 && r.DataEmissao.Year() != p.Year {
				continue
			}
			out.Projected = out.Projected.Add(r.TotalValue)
			if r.Status == entity.StatusPago {
				out.Paid = out.Paid.Add(r.PayedValue)
			}
		}
		for _, x := range d.paybles {
			if p.Year != 0 && x.DataEmissao.Year() != p.Year {
				continue
			}
			out.Projected = out.Projected.Sub(x.TotalValue)
			if x.Status == entity.StatusPago {
				out.Paid = out.Paid.Sub(x.PayedValue)
			}
		}
		return c.JSON(out)
	}
}

func paybleCounts(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		var out dto.FinanceCounts
		for _, x := range d.paybles {
			countStatus(&out, x.Status)
		}
		return c.JSON(out)
	}
}

func reciveCounts(d *Dataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		var out dto.FinanceCounts
		for _, x := range d.recives {
			countStatus(&out, x.Status)
		}
		return c.JSON(out)
	}
}

func countStatus(out *dto.FinanceCounts, status string) {
	switch status {
	case entity.StatusAberto:
		out.Open++
	case entity.StatusAtrasado:
		out.Overdue++
	}
}
