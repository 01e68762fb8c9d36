package stubserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/stubserver"
	"github.com/ecogest/ecogest-go/pkg/config"
	"github.com/ecogest/ecogest-go/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testStubCfg = config.StubConfig{
	Host:          "127.0.0.1",
	Port:          0,
	JWTSecret:     "segredo-de-teste",
	JWTExpiration: 60,
	JWTIssuer:     "ecogest-stub-test",
}

func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	return stubserver.New(stubserver.NewDataset(), testStubCfg, logger.Nop())
}

// login autentica como admin/admin e devolve o token bearer.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "admin"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login admin/admin deve funcionar")

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// doAuth emite uma requisição autenticada; body nil para GET/DELETE.
func doAuth(t *testing.T, app *fiber.App, token, method, path string, in any) *http.Response {
	t.Helper()
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// futuro devolve uma data de vencimento ainda não vencida.
func futuro() string {
	return time.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticação
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_SenhaErradaRetorna401(t *testing.T) {
	app := buildApp(t)
	body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "errada"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRotasProtegidas_SemTokenRetorna401(t *testing.T) {
	app := buildApp(t)
	req := httptest.NewRequest(http.MethodGet, "/person", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_RespostaTrazPapelDoUsuario(t *testing.T) {
	app := buildApp(t)
	body, _ := json.Marshal(dto.LoginRequest{Username: "operador", Password: "operador"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out := decode[dto.LoginResponse](t, resp)
	assert.Equal(t, entity.RoleStandard, out.User.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadastros: busca e paginação
// ──────────────────────────────────────────────────────────────────────────────

func TestListPersons_BuscaIgnoraAcentosECaixa(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	// "jose" sem acento deve achar "José da Silva Sucatas".
	resp := doAuth(t, app, token, http.MethodGet, "/person?name=jose", nil)
	page := decode[dto.Page[entity.Person]](t, resp)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "José da Silva Sucatas", page.Data[0].Name)
}

func TestListPersons_PaginacaoSkipTake(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	resp := doAuth(t, app, token, http.MethodGet, "/person?skip=1&take=1", nil)
	page := decode[dto.Page[entity.Person]](t, resp)
	assert.Equal(t, 3, page.Meta.Total, "o total reflete o conjunto filtrado, não a página")
	assert.Equal(t, 1, page.Meta.Skip)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(2), page.Data[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendas: título a receber derivado
// ──────────────────────────────────────────────────────────────────────────────

func criaVenda(t *testing.T, app *fiber.App, token string) entity.Sale {
	t.Helper()
	in := dto.CreateSaleRequest{
		PersonID: 2, // Recicla São Paulo (customer)
		Products: []entity.LineItem{
			{ProductID: 1, Quantity: decimal.NewFromInt(100), Price: decimal.NewFromFloat(0.85)},
		},
		Date:           time.Now().Format("2006-01-02"),
		DataVencimento: futuro(),
	}
	resp := doAuth(t, app, token, http.MethodPost, "/sale", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[entity.Sale](t, resp)
}

func TestCreateSale_GeraRecebivelAberto(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	sale := criaVenda(t, app, token)
	assert.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(85)), "total calculado no servidor")

	resp := doAuth(t, app, token, http.MethodGet, "/recive", nil)
	page := decode[dto.Page[entity.Receivable]](t, resp)
	require.Len(t, page.Data, 1)
	rec := page.Data[0]
	assert.Equal(t, entity.StatusAberto, rec.Status, "vencimento futuro nasce Aberto")
	assert.True(t, rec.TotalValue.Equal(sale.TotalPrice))
	require.NotNil(t, rec.SaleID)
	assert.Equal(t, sale.ID, *rec.SaleID)
}

func TestDeleteSale_RemoveORecebivelJunto(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	sale := criaVenda(t, app, token)

	resp := doAuth(t, app, token, http.MethodDelete, fmt.Sprintf("/sale/%d", sale.ID), nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	list := decode[dto.Page[entity.Receivable]](t, doAuth(t, app, token, http.MethodGet, "/recive", nil))
	assert.Empty(t, list.Data, "a exclusão da venda cascateia para o título")
}

func TestCreateSale_PersonInexistenteRetorna400(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	in := dto.CreateSaleRequest{
		PersonID:       999,
		Products:       []entity.LineItem{{ProductID: 1, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1)}},
		Date:           time.Now().Format("2006-01-02"),
		DataVencimento: futuro(),
	}
	resp := doAuth(t, app, token, http.MethodPost, "/sale", in)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Títulos: baixa e regra do status Pago
// ──────────────────────────────────────────────────────────────────────────────

func TestReciveStatus_PagoSemBaixaRetorna400(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	criaVenda(t, app, token)

	resp := doAuth(t, app, token, http.MethodPatch, "/recive/1/status",
		dto.UpdateStatusRequest{Status: entity.StatusPago})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"Pago sem data de pagamento viola a regra do título")
}

func TestRecivePayment_BaixaMarcaPagoEGuardaValor(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	sale := criaVenda(t, app, token)

	resp := doAuth(t, app, token, http.MethodPatch, "/recive/1/payment",
		dto.PaymentRequest{DataPagamento: time.Now().Format("2006-01-02")})
	rec := decode[entity.Receivable](t, resp)
	assert.Equal(t, entity.StatusPago, rec.Status)
	require.NotNil(t, rec.DataPagamento)
	assert.True(t, rec.PayedValue.Equal(sale.TotalPrice),
		"sem valor informado a baixa assume o valor do título")
}

func TestReciveList_FiltroPorStatus(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	criaVenda(t, app, token)
	criaVenda(t, app, token)

	// Baixa só o primeiro.
	resp := doAuth(t, app, token, http.MethodPatch, "/recive/1/payment",
		dto.PaymentRequest{DataPagamento: time.Now().Format("2006-01-02")})
	resp.Body.Close()

	abertos := decode[dto.Page[entity.Receivable]](t, doAuth(t, app, token, http.MethodGet, "/recive?status=Aberto", nil))
	require.Len(t, abertos.Data, 1)
	assert.Equal(t, entity.StatusAberto, abertos.Data[0].Status)

	pagos := decode[dto.Page[entity.Receivable]](t, doAuth(t, app, token, http.MethodGet, "/recive?status=Pago", nil))
	require.Len(t, pagos.Data, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras: título a pagar derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_JSONGeraPagavel(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	in := dto.CreatePurchaseRequest{
		PersonID: 1, // José da Silva Sucatas (supplier)
		Products: []entity.LineItem{
			{ProductID: 2, Quantity: decimal.NewFromInt(50), Price: decimal.NewFromInt(6)},
		},
		Date:           time.Now().Format("2006-01-02"),
		DataVencimento: futuro(),
	}
	resp := doAuth(t, app, token, http.MethodPost, "/purchase", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	purchase := decode[entity.Purchase](t, resp)
	assert.False(t, purchase.HasPaymentSlip, "compra JSON puro não tem boleto")

	page := decode[dto.Page[entity.Payable]](t, doAuth(t, app, token, http.MethodGet, "/payble", nil))
	require.Len(t, page.Data, 1)
	assert.True(t, page.Data[0].TotalValue.Equal(purchase.TotalPrice))
	require.NotNil(t, page.Data[0].PurchaseID)
	assert.Equal(t, purchase.ID, *page.Data[0].PurchaseID)
}

// ──────────────────────────────────────────────────────────────────────────────
// KPIs e recibos
// ──────────────────────────────────────────────────────────────────────────────

func TestKPICounts_RefletemOsTitulos(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	criaVenda(t, app, token)

	counts := decode[dto.FinanceCounts](t, doAuth(t, app, token, http.MethodGet, "/kpi/recive-counts", nil))
	assert.Equal(t, 1, counts.Open)
	assert.Equal(t, 0, counts.Overdue)
}

func TestCashFlowMonthly_SomaVendasNoMes(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	sale := criaVenda(t, app, token)

	now := time.Now()
	path := fmt.Sprintf("/kpi/cash-flow/monthly?year=%d", now.Year())
	report := decode[dto.CashFlowReport](t, doAuth(t, app, token, http.MethodGet, path, nil))
	require.Len(t, report.Buckets, 12)
	bucket := report.Buckets[int(now.Month())-1]
	assert.True(t, bucket.Gains.Equal(sale.TotalPrice))
	assert.True(t, bucket.Balance.Equal(sale.TotalPrice))
}

func TestSaleReceipt_DevolvePDF(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)
	sale := criaVenda(t, app, token)

	resp := doAuth(t, app, token, http.MethodGet, fmt.Sprintf("/sale/%d/receipt", sale.ID), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "o recibo deve ser um PDF real")
}
