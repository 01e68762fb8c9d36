package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/infrastructure/rest"
	"github.com/ecogest/ecogest-go/pkg/config"
	"github.com/ecogest/ecogest-go/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestClient(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5}, logger.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cabeçalhos e autenticação
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_EnviaRequestIdEAccept(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, http.StatusOK, entity.Person{ID: 1})
	})

	_, err := c.GetPerson(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Get("X-Request-Id"), "toda chamada leva um id de correlação")
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Empty(t, got.Get("Authorization"), "sem login não há bearer")
}

func TestClient_BearerAposLogin(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			writeJSON(w, http.StatusOK, dto.LoginResponse{Token: "tok-123"})
		default:
			auth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, entity.Person{ID: 1})
		}
	})

	_, err := c.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", c.Token())

	_, err = c.GetPerson(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Erros: status e detalhe preservados
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ErroEstruturadoPreservaStatusECodigo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "pessoa não encontrada"})
	})

	_, err := c.GetPerson(context.Background(), 99)
	require.Error(t, err)

	apiErr, ok := rest.AsAPIError(err)
	require.True(t, ok, "o erro da API deve chegar tipado ao chamador")
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "pessoa não encontrada", apiErr.Message)
	assert.True(t, apiErr.NotFound())
}

func TestClient_ErroSemCorpoUsaStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.GetPerson(context.Background(), 1)
	apiErr, ok := rest.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, http.StatusText(http.StatusForbidden), apiErr.Message)
}

func TestClient_FalhaDeTransporteNaoEhAPIError(t *testing.T) {
	c := rest.New(config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 1}, logger.Nop())
	_, err := c.GetPerson(context.Background(), 1)
	require.Error(t, err)
	_, ok := rest.AsAPIError(err)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Query string: opcionais ausentes são omitidos
// ──────────────────────────────────────────────────────────────────────────────

func TestListPersons_ParametrosAusentesNaoVaoNaQuery(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, dto.Page[entity.Person]{})
	})

	_, err := c.ListPersons(context.Background(), dto.ListFilter{Skip: 0, Take: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, query["skip"])
	assert.Equal(t, []string{"20"}, query["take"])
	assert.NotContains(t, query, "name", "filtro ausente não vira parâmetro vazio")
	assert.NotContains(t, query, "startDate")
	assert.NotContains(t, query, "endDate")
	assert.NotContains(t, query, "status")
}

func TestListPaybles_FiltrosPresentesVaoNaQuery(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, dto.Page[entity.Payable]{})
	})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	_, err := c.ListPaybles(context.Background(), dto.ListFilter{
		Take: 20, StartDate: &start, EndDate: &end, Status: entity.StatusAberto,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-01"}, query["startDate"])
	assert.Equal(t, []string{"2026-08-31"}, query["endDate"])
	assert.Equal(t, []string{entity.StatusAberto}, query["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Multipart: compra com boleto
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_MultipartComBoleto(t *testing.T) {
	var (
		dataField string
		slipBytes []byte
		slipName  string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		dataField = r.FormValue("data")
		f, hdr, err := r.FormFile("paymentSlip")
		require.NoError(t, err)
		defer f.Close()
		slipName = hdr.Filename
		buf := make([]byte, hdr.Size)
		_, _ = f.Read(buf)
		slipBytes = buf
		writeJSON(w, http.StatusCreated, entity.Purchase{ID: 10})
	})

	in := dto.CreatePurchaseRequest{
		PersonID:       1,
		Date:           "2026-08-30",
		DataVencimento: "2026-09-30",
		Products:       []entity.LineItem{{ProductID: 2, Quantity: decimal.NewFromInt(100), Price: decimal.NewFromFloat(0.85)}},
	}
	slip := []byte("%PDF-1.4 boleto")
	out, err := c.CreatePurchase(context.Background(), in, slip, "boleto.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)

	var sent dto.CreatePurchaseRequest
	require.NoError(t, json.Unmarshal([]byte(dataField), &sent), "o campo data carrega o JSON da compra")
	assert.Equal(t, int64(1), sent.PersonID)
	assert.Equal(t, "boleto.pdf", slipName)
	assert.Equal(t, slip, slipBytes)
}

func TestCreatePurchase_SemBoletoNaoEnviaArquivo(t *testing.T) {
	var hasFile bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("paymentSlip")
		hasFile = err == nil
		writeJSON(w, http.StatusCreated, entity.Purchase{ID: 11})
	})

	in := dto.CreatePurchaseRequest{
		PersonID: 1, Date: "2026-08-30", DataVencimento: "2026-09-30",
		Products: []entity.LineItem{{ProductID: 2, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1)}},
	}
	_, err := c.CreatePurchase(context.Background(), in, nil, "")
	require.NoError(t, err)
	assert.False(t, hasFile)
}

// ──────────────────────────────────────────────────────────────────────────────
// Blobs
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleReceipt_DevolveBytesBrutos(t *testing.T) {
	payload := []byte("%PDF-1.7 recibo")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sale/3/receipt", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	})

	got, err := c.SaleReceipt(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
