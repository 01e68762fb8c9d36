package query

import "github.com/ecogest/ecogest-go/internal/application/dto"

// listActive decide a ativação condicional das consultas de lista:
//   - busca por nome só ativa com 3+ caracteres;
//   - filtro de período só ativa com as duas datas presentes (uma só = inativo).
//
// Consulta inativa não emite chamada e reporta StateInactive.
func listActive(f dto.ListFilter) bool {
	if f.Name != "" && !f.NameActive() {
		return false
	}
	if (f.StartDate != nil) != (f.EndDate != nil) {
		return false
	}
	return true
}
