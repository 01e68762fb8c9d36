package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecogest/ecogest-go/internal/domain"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ItemsTotal soma price × quantity de todos os itens.
func ItemsTotal(items []entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// CheckTotal confere que o total informado pelo backend bate com
// soma dos itens menos o desconto. O total é calculado no servidor;
// a conferência antes de exibir expõe divergência entre as pontas.
func CheckTotal(items []entity.LineItem, discount, total decimal.Decimal) error {
	expected := ItemsTotal(items).Sub(discount)
	if !expected.Equal(total) {
		return fmt.Errorf("%w: esperado %s, recebido %s", domain.ErrTotalDivergente, expected, total)
	}
	return nil
}

// CheckPurchase e CheckSale aplicam CheckTotal ao registro completo.
func CheckPurchase(p entity.Purchase) error {
	return CheckTotal(p.Items, p.Discount, p.TotalPrice)
}

func CheckSale(s entity.Sale) error {
	return CheckTotal(s.Items, s.Discount, s.TotalPrice)
}
