package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma venda de material a um cliente.
// Toda venda gera um título a receber (Receivable) no backend.
type Sale struct {
	ID         int64           `json:"saleId"`
	CustomerID int64           `json:"personId"`
	Customer   *Person         `json:"customer,omitempty"`
	Date       time.Time       `json:"date_time"`
	Items      []LineItem      `json:"products"`
	Discount   decimal.Decimal `json:"discount"`
	TotalPrice decimal.Decimal `json:"totalPrice"` // calculado no backend
	NFe        string          `json:"nfe"`
}
