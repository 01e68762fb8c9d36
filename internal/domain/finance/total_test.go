package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogest/ecogest-go/internal/domain"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/domain/finance"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Itens típicos: 120 kg de papelão a 0.85 e 40 kg de alumínio a 6.20.
func itens() []entity.LineItem {
	return []entity.LineItem{
		{ProductID: 1, Quantity: dec("120"), Price: dec("0.85")},
		{ProductID: 2, Quantity: dec("40"), Price: dec("6.20")},
	}
}

func TestItemsTotal_SomaPrecoVezesQuantidade(t *testing.T) {
	// 120×0.85 + 40×6.20 = 102 + 248 = 350
	assert.True(t, finance.ItemsTotal(itens()).Equal(dec("350")))
}

func TestItemsTotal_SemItens(t *testing.T) {
	assert.True(t, finance.ItemsTotal(nil).IsZero())
}

func TestCheckTotal_BatendoComDesconto(t *testing.T) {
	assert.NoError(t, finance.CheckTotal(itens(), dec("50"), dec("300")))
}

func TestCheckTotal_DivergenciaEhErroSentinela(t *testing.T) {
	err := finance.CheckTotal(itens(), dec("0"), dec("349.99"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTotalDivergente)
	assert.Contains(t, err.Error(), "350", "a mensagem deve trazer o valor esperado")
}

func TestCheckSaleECheckPurchase(t *testing.T) {
	sale := entity.Sale{Items: itens(), Discount: dec("10"), TotalPrice: dec("340")}
	assert.NoError(t, finance.CheckSale(sale))

	purchase := entity.Purchase{Items: itens(), Discount: dec("10"), TotalPrice: dec("300")}
	assert.ErrorIs(t, finance.CheckPurchase(purchase), domain.ErrTotalDivergente)
}
