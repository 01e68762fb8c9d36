package dto

import "github.com/shopspring/decimal"

// Os agregados são calculados no backend e apenas exibidos;
// o cliente não recomputa nada destas visões.

// KPIFilter parâmetros das visões de indicadores. Opcionais ausentes são
// omitidos da requisição, nunca enviados vazios.
type KPIFilter struct {
	Year      int
	Month     int    // 0 = não informado
	PersonID  *int64 // opcional
	ProductID *int64 // opcional
}

// CashFlowBucket um período (mês ou dia) do fluxo de caixa.
type CashFlowBucket struct {
	Period  int             `json:"period"` // número do mês ou do dia
	Gains   decimal.Decimal `json:"gains"`
	Losses  decimal.Decimal `json:"losses"`
	Balance decimal.Decimal `json:"balance"`
}

// CashFlowReport fluxo de caixa agregado por mês (de um ano) ou por dia (de um mês).
type CashFlowReport struct {
	Year    int              `json:"year"`
	Month   int              `json:"month,omitempty"` // presente só na visão diária
	Buckets []CashFlowBucket `json:"buckets"`
}

// BalanceSummary saldo projetado (tudo emitido) versus realizado (pago).
type BalanceSummary struct {
	Projected decimal.Decimal `json:"projected"`
	Paid      decimal.Decimal `json:"paid"`
}

// FinanceCounts contagem de títulos em aberto e atrasados.
type FinanceCounts struct {
	Open    int `json:"open"`
	Overdue int `json:"overdue"`
}
