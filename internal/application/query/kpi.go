package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
)

// Visões de indicadores: somente leitura, agregados do backend exibidos como
// chegam. Nenhuma escrita declara dependência sobre elas.

// CashFlowMonthly fluxo de caixa por mês do ano. Exige ano informado.
func (c *Client) CashFlowMonthly(ctx context.Context, f dto.KPIFilter) Result[dto.CashFlowReport] {
	return Fetch(ctx, c, NewKey(ResourceCashFlowMonthly, f), f.Year > 0, func(ctx context.Context) (dto.CashFlowReport, error) {
		return c.api.CashFlowMonthly(ctx, f)
	})
}

// CashFlowDaily fluxo de caixa por dia. Exige ano e mês.
func (c *Client) CashFlowDaily(ctx context.Context, f dto.KPIFilter) Result[dto.CashFlowReport] {
	active := f.Year > 0 && f.Month >= 1 && f.Month <= 12
	return Fetch(ctx, c, NewKey(ResourceCashFlowDaily, f), active, func(ctx context.Context) (dto.CashFlowReport, error) {
		return c.api.CashFlowDaily(ctx, f)
	})
}

// Balance saldo projetado versus realizado.
func (c *Client) Balance(ctx context.Context, f dto.KPIFilter) Result[dto.BalanceSummary] {
	return Fetch(ctx, c, NewKey(ResourceBalance, f), f.Year > 0, func(ctx context.Context) (dto.BalanceSummary, error) {
		return c.api.Balance(ctx, f)
	})
}

// PaybleCounts contagem de pagáveis em aberto e atrasados.
func (c *Client) PaybleCounts(ctx context.Context) Result[dto.FinanceCounts] {
	return Fetch(ctx, c, NewKey(ResourcePaybleCounts, nil), true, func(ctx context.Context) (dto.FinanceCounts, error) {
		return c.api.PaybleCounts(ctx)
	})
}

// ReciveCounts contagem de recebíveis em aberto e atrasados.
func (c *Client) ReciveCounts(ctx context.Context) Result[dto.FinanceCounts] {
	return Fetch(ctx, c, NewKey(ResourceReciveCounts, nil), true, func(ctx context.Context) (dto.FinanceCounts, error) {
		return c.api.ReciveCounts(ctx)
	})
}
