package entity

import "github.com/shopspring/decimal"

// Product representa um material reciclável comercializado.
// O peso é mantido em quilogramas; a exibição usual é em toneladas.
type Product struct {
	ID           int64           `json:"productId"`
	Name         string          `json:"name"`
	WeightAmount decimal.Decimal `json:"weightAmount"` // kg em estoque
	Price        decimal.Decimal `json:"price"`        // preço por kg
}

var mil = decimal.NewFromInt(1000)

// WeightTonnes devolve o peso em toneladas, como exibido nas telas.
func (p Product) WeightTonnes() decimal.Decimal {
	return p.WeightAmount.Div(mil)
}
