package finance

import (
	"github.com/ecogest/ecogest-go/internal/domain"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

// ValidatePayableOrigin garante que o título referencia no máximo uma origem:
// compra XOR lançamento manual.
func ValidatePayableOrigin(p entity.Payable) error {
	if p.PurchaseID != nil && p.EntryID != nil {
		return domain.ErrOrigemAmbigua
	}
	return nil
}

// ValidateReceivableOrigin idem para títulos a receber: venda XOR lançamento.
func ValidateReceivableOrigin(r entity.Receivable) error {
	if r.SaleID != nil && r.EntryID != nil {
		return domain.ErrOrigemAmbigua
	}
	return nil
}
