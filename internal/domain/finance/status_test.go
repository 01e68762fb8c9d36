package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ecogest/ecogest-go/internal/domain"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/domain/finance"
)

var ref = time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

func dia(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus_PagoQuandoHaDataPagamento(t *testing.T) {
	pagamento := dia(10)
	// Mesmo com vencimento no passado, pagamento registrado vence.
	assert.Equal(t, entity.StatusPago, finance.DeriveStatus(dia(1), &pagamento, ref))
}

func TestDeriveStatus_AtrasadoQuandoVencimentoPassou(t *testing.T) {
	assert.Equal(t, entity.StatusAtrasado, finance.DeriveStatus(dia(29), nil, ref))
}

func TestDeriveStatus_AbertoNoProprioDiaDoVencimento(t *testing.T) {
	// Vence hoje: ainda não é atraso, mesmo com a referência tendo hora.
	assert.Equal(t, entity.StatusAberto, finance.DeriveStatus(dia(30), nil, ref))
}

func TestDeriveStatus_AbertoComVencimentoFuturo(t *testing.T) {
	assert.Equal(t, entity.StatusAberto, finance.DeriveStatus(dia(31), nil, ref))
}

func TestValidateStatus_PagoSemDataEhErro(t *testing.T) {
	err := finance.ValidateStatus(entity.StatusPago, nil)
	assert.ErrorIs(t, err, domain.ErrPagoSemData)
}

func TestValidateStatus_DataSemPagoEhConflito(t *testing.T) {
	pagamento := dia(10)
	err := finance.ValidateStatus(entity.StatusAberto, &pagamento)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestValidateStatus_ParesCoerentes(t *testing.T) {
	pagamento := dia(10)
	assert.NoError(t, finance.ValidateStatus(entity.StatusPago, &pagamento))
	assert.NoError(t, finance.ValidateStatus(entity.StatusAberto, nil))
	assert.NoError(t, finance.ValidateStatus(entity.StatusAtrasado, nil))
}

func TestOverdue(t *testing.T) {
	pagamento := dia(10)
	assert.True(t, finance.Overdue(dia(29), nil, ref))
	assert.False(t, finance.Overdue(dia(30), nil, ref), "vencer hoje não é atraso")
	assert.False(t, finance.Overdue(dia(1), &pagamento, ref), "título pago nunca está em atraso")
}
