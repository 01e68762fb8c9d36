package stubserver_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/application/query"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/infrastructure/memcache"
	"github.com/ecogest/ecogest-go/internal/infrastructure/rest"
	"github.com/ecogest/ecogest-go/internal/stubserver"
	"github.com/ecogest/ecogest-go/pkg/config"
	"github.com/ecogest/ecogest-go/pkg/logger"
)

// Sobe o stub num socket real e aponta a camada de cache para ele: o caminho
// completo cliente → REST → stub, igual ao uso da CLI.
func startStub(t *testing.T) *query.Client {
	t.Helper()
	app := stubserver.New(stubserver.NewDataset(), testStubCfg, logger.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	api := rest.New(config.APIConfig{
		BaseURL: fmt.Sprintf("http://%s", ln.Addr().String()),
		Timeout: 5,
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = api.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	return query.New(api, memcache.New(), logger.Nop())
}

func TestE2E_LeituraRepetidaVemDoCache(t *testing.T) {
	q := startStub(t)
	ctx := context.Background()

	first := q.Persons(ctx, dto.ListFilter{})
	require.True(t, first.OK())
	assert.False(t, first.FromCache)
	assert.Equal(t, 3, first.Data.Meta.Total)

	second := q.Persons(ctx, dto.ListFilter{})
	require.True(t, second.OK())
	assert.True(t, second.FromCache, "mesmos parâmetros, sem nova chamada")
}

func TestE2E_CriarVendaInvalidaVendasERecebiveis(t *testing.T) {
	q := startStub(t)
	ctx := context.Background()

	// Aquece os dois caches.
	sales := q.Sales(ctx, dto.ListFilter{})
	require.True(t, sales.OK())
	assert.Empty(t, sales.Data.Data)
	recives := q.Recives(ctx, dto.ListFilter{})
	require.True(t, recives.OK())
	assert.Empty(t, recives.Data.Data)

	_, err := q.CreateSale(ctx, dto.CreateSaleRequest{
		PersonID: 2,
		Products: []entity.LineItem{
			{ProductID: 1, Quantity: decimal.NewFromInt(200), Price: decimal.NewFromFloat(0.85)},
		},
		Date:           time.Now().Format("2006-01-02"),
		DataVencimento: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
	})
	require.NoError(t, err)

	// As duas listas ficaram stale: a releitura busca de novo e vê a escrita.
	sales = q.Sales(ctx, dto.ListFilter{})
	require.True(t, sales.OK())
	assert.False(t, sales.FromCache)
	assert.Len(t, sales.Data.Data, 1)

	recives = q.Recives(ctx, dto.ListFilter{})
	require.True(t, recives.OK())
	assert.False(t, recives.FromCache, "a venda invalida também os recebíveis")
	assert.Len(t, recives.Data.Data, 1)
}

func TestE2E_CadastroNaoInvalidaOutrosRecursos(t *testing.T) {
	q := startStub(t)
	ctx := context.Background()

	products := q.Products(ctx, dto.ListFilter{})
	require.True(t, products.OK())

	_, err := q.CreatePerson(ctx, entity.Person{Name: "Novo Fornecedor", Type: entity.PersonTypeSupplier})
	require.NoError(t, err)

	again := q.Products(ctx, dto.ListFilter{})
	assert.True(t, again.FromCache, "criar pessoa não alcança o cache de produtos")
}

func TestE2E_BaixaInvalidaODetalheDoTitulo(t *testing.T) {
	q := startStub(t)
	ctx := context.Background()

	_, err := q.CreateSale(ctx, dto.CreateSaleRequest{
		PersonID: 2,
		Products: []entity.LineItem{
			{ProductID: 1, Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(1)},
		},
		Date:           time.Now().Format("2006-01-02"),
		DataVencimento: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
	})
	require.NoError(t, err)

	detail := q.Recive(ctx, 1)
	require.True(t, detail.OK())
	assert.Equal(t, entity.StatusAberto, detail.Data.Status)

	_, err = q.PayRecive(ctx, 1, dto.PaymentRequest{
		DataPagamento: time.Now().Format("2006-01-02"),
	})
	require.NoError(t, err)

	detail = q.Recive(ctx, 1)
	require.True(t, detail.OK())
	assert.False(t, detail.FromCache, "a baixa invalida a chave de detalhe do título")
	assert.Equal(t, entity.StatusPago, detail.Data.Status)
}

func TestE2E_ErroDoBackendChegaTipado(t *testing.T) {
	q := startStub(t)
	ctx := context.Background()

	res := q.Person(ctx, 999)
	require.True(t, res.IsError())
	apiErr, ok := rest.AsAPIError(res.Err)
	require.True(t, ok)
	assert.True(t, apiErr.NotFound())
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}
