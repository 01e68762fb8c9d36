package entity

import "github.com/shopspring/decimal"

// LineItem item de uma compra ou venda: produto × quantidade × preço negociado.
// O preço do item é o acordado na operação, não o preço de tabela do produto.
type LineItem struct {
	ProductID int64           `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"` // kg
	Price     decimal.Decimal `json:"price"`    // por kg
	Product   *Product        `json:"product,omitempty"`
}

// Subtotal devolve price × quantity do item.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(i.Quantity)
}
