package rest

import (
	"net/url"
	"strconv"

	"github.com/ecogest/ecogest-go/internal/application/dto"
)

// dateLayout formato de data do contrato da API.
const dateLayout = "2006-01-02"

// listValues codifica o filtro comum em query string. Parâmetros opcionais
// ausentes são omitidos — o backend espera ausência, não vazio.
func listValues(f dto.ListFilter) url.Values {
	qs := url.Values{}
	qs.Set("skip", strconv.Itoa(f.Skip))
	qs.Set("take", strconv.Itoa(f.Take))
	if f.Name != "" {
		qs.Set("name", f.Name)
	}
	if f.StartDate != nil {
		qs.Set("startDate", f.StartDate.Format(dateLayout))
	}
	if f.EndDate != nil {
		qs.Set("endDate", f.EndDate.Format(dateLayout))
	}
	if f.Status != "" {
		qs.Set("status", f.Status)
	}
	return qs
}

// kpiValues codifica o filtro das visões de indicadores.
func kpiValues(f dto.KPIFilter) url.Values {
	qs := url.Values{}
	qs.Set("year", strconv.Itoa(f.Year))
	if f.Month != 0 {
		qs.Set("month", strconv.Itoa(f.Month))
	}
	if f.PersonID != nil {
		qs.Set("personId", strconv.FormatInt(*f.PersonID, 10))
	}
	if f.ProductID != nil {
		qs.Set("productId", strconv.FormatInt(*f.ProductID, 10))
	}
	return qs
}
