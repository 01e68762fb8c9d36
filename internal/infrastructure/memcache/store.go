// Package memcache implementa o Store de consultas em memória.
// O cache vive pelo tempo da sessão do processo; nada é persistido.
package memcache

import (
	"sync"

	"github.com/ecogest/ecogest-go/internal/application/query"
)

// Verificação em tempo de compilação.
var _ query.Store = (*Store)(nil)

type record struct {
	value any
	stale bool
}

// Store cache chave-valor protegido por RWMutex; compartilhado por todo o
// processo, com escrita atômica por chave (a última resposta gravada vence).
type Store struct {
	mu      sync.RWMutex
	records map[query.Key]record
}

// New cria um Store vazio.
func New() *Store {
	return &Store{records: make(map[query.Key]record)}
}

// Lookup devolve o valor da chave, se existe, e se está stale.
func (s *Store) Lookup(k query.Key) (any, bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[k]
	if !ok {
		return nil, false, false
	}
	return r.value, true, r.stale
}

// Put grava o valor fresco da chave, sobrescrevendo o que houver.
func (s *Store) Put(k query.Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[k] = record{value: v}
}

// Invalidate marca como stale todas as chaves do recurso, qualquer que seja
// o conjunto de parâmetros.
func (s *Store) Invalidate(resource string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, r := range s.records {
		if k.Resource == resource {
			r.stale = true
			s.records[k] = r
		}
	}
}

// InvalidateKey marca como stale uma chave específica.
func (s *Store) InvalidateKey(k query.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[k]; ok {
		r.stale = true
		s.records[k] = r
	}
}

// Reset esvazia o cache.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[query.Key]record)
}
