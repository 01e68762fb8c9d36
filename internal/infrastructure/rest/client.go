// Package rest é a camada de serviço da API EcoGest: uma função por operação
// remota, cada uma traduzindo uma entrada tipada em exatamente uma chamada
// HTTP. Sem retries; timeout é o do cliente HTTP configurado.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecogest/ecogest-go/pkg/config"
	"github.com/ecogest/ecogest-go/pkg/logger"
)

// maxBodyBytes limite de leitura de corpos de resposta (JSON e arquivos).
const maxBodyBytes = 32 << 20

// Client cliente HTTP tipado da API. O token bearer é definido após o Login
// e anexado a todas as chamadas seguintes.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	log     *logger.Logger
}

// New constrói o cliente a partir da configuração.
func New(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
		log:     log,
	}
}

// SetToken define o token bearer das próximas chamadas.
func (c *Client) SetToken(t string) { c.token = t }

// Token devolve o token bearer corrente ("" antes do login).
func (c *Client) Token() string { return c.token }

// ── Núcleo de requisição ──────────────────────────────────────────────────────

// do emite uma requisição e decodifica a resposta JSON em out (quando não nil).
// Status não-2xx vira *APIError com o corpo estruturado preservado.
func (c *Client) do(ctx context.Context, method, path string, qs url.Values, contentType string, body io.Reader, out any) error {
	raw, err := c.doRaw(ctx, method, path, qs, contentType, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decodificar resposta de %s %s: %w", method, path, err)
	}
	return nil
}

// doRaw emite a requisição e devolve o corpo bruto (para endpoints binários).
func (c *Client) doRaw(ctx context.Context, method, path string, qs url.Values, contentType string, body io.Reader) ([]byte, error) {
	u := c.baseURL + path
	if len(qs) > 0 {
		u += "?" + qs.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("api: criar requisição %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Falha de transporte: propaga com contexto, sem perder o erro original.
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("api: ler resposta de %s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("chamada à API")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFrom(resp.StatusCode, raw)
	}
	return raw, nil
}

// ── Helpers por método ────────────────────────────────────────────────────────

func (c *Client) get(ctx context.Context, path string, qs url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, qs, "", nil, out)
}

func (c *Client) getBlob(ctx context.Context, path string) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, path, nil, "", nil)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) patchJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: serializar corpo de %s %s: %w", method, path, err)
	}
	return c.do(ctx, method, path, nil, "application/json", bytes.NewReader(b), out)
}

// sendMultipart envia um payload JSON no campo "data" mais um arquivo opcional.
// Usado pelas compras com boleto anexado.
func (c *Client) sendMultipart(ctx context.Context, method, path string, in any, fileField, fileName string, file []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: serializar campo data de %s %s: %w", method, path, err)
	}
	if err := w.WriteField("data", string(data)); err != nil {
		return fmt.Errorf("api: montar multipart: %w", err)
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("api: montar multipart: %w", err)
		}
		if _, err := part.Write(file); err != nil {
			return fmt.Errorf("api: montar multipart: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: fechar multipart: %w", err)
	}
	return c.do(ctx, method, path, nil, w.FormDataContentType(), &buf, out)
}
