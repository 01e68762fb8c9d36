package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError erro de status HTTP (4xx/5xx) com o corpo estruturado da API
// quando presente. O status e o detalhe originais são preservados de ponta a
// ponta; nenhuma função de serviço os mascara com mensagem genérica.
type APIError struct {
	Status  int    // código HTTP
	Code    string // código da API (ex: "VALIDATION"), pode ser vazio
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: HTTP %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
}

// NotFound indica erro 404.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

// AsAPIError extrai um *APIError da cadeia de erros, se houver.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// apiErrorFrom monta o APIError a partir do status e do corpo bruto.
func apiErrorFrom(status int, body []byte) *APIError {
	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &APIError{Status: status, Code: parsed.Code, Message: parsed.Message}
	}
	msg := string(body)
	if len(msg) > 256 {
		msg = msg[:256]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
