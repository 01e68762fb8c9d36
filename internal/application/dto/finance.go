package dto

import "github.com/shopspring/decimal"

// UpdateStatusRequest payload do PATCH de status de título.
type UpdateStatusRequest struct {
	Status string `json:"status"` // Aberto | Pago | Atrasado
}

// PaymentRequest payload da baixa de título: registrar pagamento.
type PaymentRequest struct {
	DataPagamento string          `json:"dataPagamento"` // YYYY-MM-DD
	PayedValue    decimal.Decimal `json:"payedValue"`
}
