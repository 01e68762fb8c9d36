package stubserver

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/application/dto"
)

const dateLayout = "2006-01-02"

// listParams filtro comum decodificado da query string.
type listParams struct {
	Skip      int
	Take      int
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
}

func parseListParams(c *fiber.Ctx) listParams {
	p := listParams{
		Name:   c.Query("name"),
		Status: c.Query("status"),
	}
	p.Skip, _ = strconv.Atoi(c.Query("skip", "0"))
	p.Take, _ = strconv.Atoi(c.Query("take", "20"))
	if p.Take <= 0 {
		p.Take = 20
	}
	if t, err := time.Parse(dateLayout, c.Query("startDate")); err == nil {
		p.StartDate = &t
	}
	if t, err := time.Parse(dateLayout, c.Query("endDate")); err == nil {
		p.EndDate = &t
	}
	return p
}

// inPeriod aplica o filtro de período quando as duas datas vieram.
func (p listParams) inPeriod(t time.Time) bool {
	if p.StartDate == nil || p.EndDate == nil {
		return true
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(*p.StartDate) && !day.After(*p.EndDate)
}

// paginate recorta a janela skip/take e monta o envelope {data, meta}.
func paginate[T any](items []T, p listParams) dto.Page[T] {
	total := len(items)
	start := p.Skip
	if start > total {
		start = total
	}
	end := start + p.Take
	if end > total {
		end = total
	}
	return dto.Page[T]{
		Data: items[start:end],
		Meta: dto.PageMeta{Skip: p.Skip, Take: p.Take, Total: total},
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
