// Package finance concentra as regras financeiras dos títulos:
// derivação de status por datas e conferência de totais.
package finance

import (
	"time"

	"github.com/ecogest/ecogest-go/internal/domain"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// DeriveStatus deriva o status de um título a partir das datas.
// Pago quando há data de pagamento; Atrasado quando o vencimento passou;
// Aberto caso contrário. Só a data importa, não a hora.
func DeriveStatus(vencimento time.Time, pagamento *time.Time, ref time.Time) string {
	if pagamento != nil {
		return entity.StatusPago
	}
	if dateOnly(vencimento).Before(dateOnly(ref)) {
		return entity.StatusAtrasado
	}
	return entity.StatusAberto
}

// ValidateStatus confere a coerência entre status e datas:
// Pago exige dataPagamento; os demais status não podem tê-la.
func ValidateStatus(status string, pagamento *time.Time) error {
	if status == entity.StatusPago && pagamento == nil {
		return domain.ErrPagoSemData
	}
	if status != entity.StatusPago && pagamento != nil {
		return domain.ErrConflict
	}
	return nil
}

// Overdue indica se um título não pago está vencido na data de referência.
func Overdue(vencimento time.Time, pagamento *time.Time, ref time.Time) bool {
	return pagamento == nil && dateOnly(vencimento).Before(dateOnly(ref))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
