package dto

import "time"

// MinNameQuery tamanho mínimo da busca por nome antes de emitir chamada.
const MinNameQuery = 3

// ListFilter filtro comum dos listados: paginação skip/take, busca textual,
// período e status. Campos zero são omitidos da query string — o backend
// espera ausência, não null/vazio.
type ListFilter struct {
	Skip      int
	Take      int
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Status    string // "" | Aberto | Pago | Atrasado
}

// DefaultPage aplica o take padrão quando não informado.
func (f *ListFilter) DefaultPage() {
	if f.Take <= 0 {
		f.Take = 20
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
}

// HasPeriod indica se o período está completo (início e fim presentes).
// Consultas por período só ativam quando as duas datas existem.
func (f ListFilter) HasPeriod() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// NameActive indica se a busca por nome atingiu o mínimo de caracteres.
func (f ListFilter) NameActive() bool {
	return len(f.Name) >= MinNameQuery
}
