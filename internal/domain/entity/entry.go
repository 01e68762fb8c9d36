package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento manual no caixa.
const (
	EntryTypeGain = "gain" // ganho
	EntryTypeLoss = "loss" // perda
)

// Entry representa um lançamento manual do livro-caixa, independente de
// compras e vendas. Pode opcionalmente gerar título a pagar ou a receber.
type Entry struct {
	ID      int64           `json:"entryId"`
	Type    string          `json:"type"`    // gain | loss
	Subtype string          `json:"subtype"` // categoria livre (ex: "frete", "energia")
	Value   decimal.Decimal `json:"value"`
	Date    time.Time       `json:"date"`
}
