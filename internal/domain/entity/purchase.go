package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa uma compra de material de um fornecedor.
// Toda compra gera um título a pagar (Payable) no backend.
type Purchase struct {
	ID         int64           `json:"purchaseId"`
	SupplierID int64           `json:"personId"`
	Supplier   *Person         `json:"supplier,omitempty"`
	Date       time.Time       `json:"date_time"`
	Items      []LineItem      `json:"products"`
	Discount   decimal.Decimal `json:"discount"`
	TotalPrice decimal.Decimal `json:"totalPrice"` // calculado no backend
	NFe        string          `json:"nfe"`
	// HasPaymentSlip indica boleto anexado; o binário é servido em endpoint próprio.
	HasPaymentSlip bool `json:"hasPaymentSlip,omitempty"`
}
