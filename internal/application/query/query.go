// Package query implementa a camada de acesso a recursos com cache coerente:
// leituras com chave derivada de recurso+parâmetros, escritas com invalidação
// declarada (tabela em invalidation.go) e ativação condicional de consultas.
package query

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/infrastructure/rest"
	"github.com/ecogest/ecogest-go/pkg/logger"
)

// State estado de um resultado de leitura.
type State int

const (
	// StateInactive a pré-condição da consulta não vale; nenhuma chamada foi
	// emitida e não há dado nem erro.
	StateInactive State = iota
	// StateSuccess há dado (do cache ou recém-buscado).
	StateSuccess
	// StateError a chamada falhou; Err carrega o erro original.
	StateError
)

// Result resultado de uma leitura: dado, origem e erro.
type Result[T any] struct {
	Data      T
	State     State
	FromCache bool // true quando o dado veio do cache sem nova chamada
	Err       error
}

// OK indica se há dado utilizável.
func (r Result[T]) OK() bool { return r.State == StateSuccess }

// IsError indica falha de busca.
func (r Result[T]) IsError() bool { return r.State == StateError }

// Inactive indica consulta não ativada.
func (r Result[T]) Inactive() bool { return r.State == StateInactive }

// Client amarra o serviço REST ao cache. Todas as leituras e escritas do
// aplicativo passam por aqui.
type Client struct {
	api   *rest.Client
	store Store
	log   *logger.Logger
}

// New constrói o cliente de recursos.
func New(api *rest.Client, store Store, log *logger.Logger) *Client {
	return &Client{api: api, store: store, log: log}
}

// API expõe o cliente REST subjacente (operações sem cache, ex: download de arquivos).
func (c *Client) API() *rest.Client { return c.api }

// Reset esvazia o cache da sessão.
func (c *Client) Reset() { c.store.Reset() }

// Fetch executa uma leitura com cache. Quando enabled é falso devolve
// StateInactive sem emitir chamada. Com entrada fresca no cache devolve o dado
// sem rede; ausente ou stale, chama fn e grava o resultado.
func Fetch[T any](ctx context.Context, c *Client, key Key, enabled bool, fn func(context.Context) (T, error)) Result[T] {
	if !enabled {
		return Result[T]{State: StateInactive}
	}
	if v, ok, stale := c.store.Lookup(key); ok && !stale {
		if data, cast := v.(T); cast {
			return Result[T]{Data: data, State: StateSuccess, FromCache: true}
		}
	}
	data, err := fn(ctx)
	if err != nil {
		c.log.Debug().Str("key", key.String()).Err(err).Msg("falha na leitura")
		return Result[T]{State: StateError, Err: err}
	}
	// Última resposta a resolver vence: Put sobrescreve a entrada da chave.
	c.store.Put(key, data)
	return Result[T]{Data: data, State: StateSuccess}
}
