package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable representa um título a receber, originado de uma venda XOR de um
// lançamento manual. Espelha Payable, com identidade e origem próprias.
type Receivable struct {
	ID             int64           `json:"receiveId"`
	Status         string          `json:"status"` // Aberto | Pago | Atrasado
	DataEmissao    time.Time       `json:"dataEmissao"`
	DataVencimento time.Time       `json:"dataVencimento"`
	DataPagamento  *time.Time      `json:"dataPagamento,omitempty"`
	PayedValue     decimal.Decimal `json:"payedValue"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	SaleID         *int64          `json:"saleId,omitempty"`
	EntryID        *int64          `json:"entryId,omitempty"`
	Sale           *Sale           `json:"sale,omitempty"`
	Entry          *Entry          `json:"entry,omitempty"`
}
