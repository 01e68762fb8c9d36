package rest

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
)

// Visões de indicadores: agregados prontos do backend, sem recomputação local.

// CashFlowMonthly GET /kpi/cash-flow/monthly — fluxo de caixa por mês do ano.
func (c *Client) CashFlowMonthly(ctx context.Context, f dto.KPIFilter) (dto.CashFlowReport, error) {
	var out dto.CashFlowReport
	err := c.get(ctx, "/kpi/cash-flow/monthly", kpiValues(f), &out)
	return out, err
}

// CashFlowDaily GET /kpi/cash-flow/daily — fluxo por dia do mês informado.
func (c *Client) CashFlowDaily(ctx context.Context, f dto.KPIFilter) (dto.CashFlowReport, error) {
	var out dto.CashFlowReport
	err := c.get(ctx, "/kpi/cash-flow/daily", kpiValues(f), &out)
	return out, err
}

// Balance GET /kpi/balance — saldo projetado versus realizado.
func (c *Client) Balance(ctx context.Context, f dto.KPIFilter) (dto.BalanceSummary, error) {
	var out dto.BalanceSummary
	err := c.get(ctx, "/kpi/balance", kpiValues(f), &out)
	return out, err
}

// PaybleCounts GET /kpi/payble-counts — títulos a pagar em aberto e atrasados.
func (c *Client) PaybleCounts(ctx context.Context) (dto.FinanceCounts, error) {
	var out dto.FinanceCounts
	err := c.get(ctx, "/kpi/payble-counts", nil, &out)
	return out, err
}

// ReciveCounts GET /kpi/recive-counts — títulos a receber em aberto e atrasados.
func (c *Client) ReciveCounts(ctx context.Context) (dto.FinanceCounts, error) {
	var out dto.FinanceCounts
	err := c.get(ctx, "/kpi/recive-counts", nil, &out)
	return out, err
}
