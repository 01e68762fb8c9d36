package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa um funcionário da empresa.
type Employee struct {
	ID              int64           `json:"employeeId"`
	Registration    string          `json:"registration"` // matrícula
	Name            string          `json:"name"`
	Document        string          `json:"document"` // CPF
	Role            string          `json:"role"`     // cargo
	Salary          decimal.Decimal `json:"salary"`
	AdmissionDate   time.Time       `json:"admissionDate"`
	TerminationDate *time.Time      `json:"terminationDate,omitempty"` // nil = ativo
	Address         string          `json:"address"`
}

// Active indica se o funcionário segue no quadro.
func (e Employee) Active() bool {
	return e.TerminationDate == nil
}
