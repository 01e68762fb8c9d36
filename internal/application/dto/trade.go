package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// CreateSaleRequest payload do POST /sale. A data de vencimento alimenta o
// título a receber que o backend gera junto com a venda.
type CreateSaleRequest struct {
	PersonID       int64             `json:"personId"`
	Products       []entity.LineItem `json:"products"`
	Discount       decimal.Decimal   `json:"discount"`
	Date           string            `json:"date_time"`      // YYYY-MM-DD
	NFe            string            `json:"nfe"`
	DataVencimento string            `json:"dataVencimento"` // YYYY-MM-DD
}

// UpdateSaleRequest payload do PUT /sale/{id}.
type UpdateSaleRequest struct {
	PersonID int64             `json:"personId"`
	Products []entity.LineItem `json:"products"`
	Discount decimal.Decimal   `json:"discount"`
	Date     string            `json:"date_time"`
	NFe      string            `json:"nfe"`
}

// CreatePurchaseRequest payload do POST /purchase. O boleto (paymentSlip)
// segue como parte de arquivo em multipart, fora deste JSON.
type CreatePurchaseRequest struct {
	PersonID       int64             `json:"personId"`
	Products       []entity.LineItem `json:"products"`
	Discount       decimal.Decimal   `json:"discount"`
	Date           string            `json:"date_time"`
	NFe            string            `json:"nfe"`
	DataVencimento string            `json:"dataVencimento"`
}

// UpdatePurchaseRequest payload do PUT /purchase/{id}.
type UpdatePurchaseRequest struct {
	PersonID int64             `json:"personId"`
	Products []entity.LineItem `json:"products"`
	Discount decimal.Decimal   `json:"discount"`
	Date     string            `json:"date_time"`
	NFe      string            `json:"nfe"`
}
