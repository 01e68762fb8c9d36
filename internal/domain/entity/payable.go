package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de títulos a pagar e a receber. Os literais são os do backend.
const (
	StatusAberto   = "Aberto"
	StatusPago     = "Pago"
	StatusAtrasado = "Atrasado"
)

// Payable representa um título a pagar, originado de uma compra XOR de um
// lançamento manual (nunca ambos).
type Payable struct {
	ID             int64           `json:"payableId"`
	Status         string          `json:"status"` // Aberto | Pago | Atrasado
	DataEmissao    time.Time       `json:"dataEmissao"`
	DataVencimento time.Time       `json:"dataVencimento"`
	DataPagamento  *time.Time      `json:"dataPagamento,omitempty"`
	PayedValue     decimal.Decimal `json:"payedValue"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	PurchaseID     *int64          `json:"purchaseId,omitempty"`
	EntryID        *int64          `json:"entryId,omitempty"`
	Purchase       *Purchase       `json:"purchase,omitempty"`
	Entry          *Entry          `json:"entry,omitempty"`
}
