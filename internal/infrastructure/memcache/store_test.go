package memcache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogest/ecogest-go/internal/application/query"
	"github.com/ecogest/ecogest-go/internal/infrastructure/memcache"
)

func TestPutLookup(t *testing.T) {
	s := memcache.New()
	k := query.NewKey("sales-list", 1)

	_, ok, _ := s.Lookup(k)
	assert.False(t, ok, "chave nunca gravada não existe")

	s.Put(k, "valor")
	v, ok, stale := s.Lookup(k)
	require.True(t, ok)
	assert.False(t, stale)
	assert.Equal(t, "valor", v)
}

func TestInvalidate_MarcaStaleTodasAsChavesDoRecurso(t *testing.T) {
	s := memcache.New()
	pagina1 := query.NewKey("sales-list", 1)
	pagina2 := query.NewKey("sales-list", 2)
	outra := query.NewKey("persons-list", 1)
	s.Put(pagina1, "a")
	s.Put(pagina2, "b")
	s.Put(outra, "c")

	s.Invalidate("sales-list")

	_, ok, stale := s.Lookup(pagina1)
	assert.True(t, ok && stale, "todas as páginas do recurso ficam stale")
	_, ok, stale = s.Lookup(pagina2)
	assert.True(t, ok && stale)
	_, ok, stale = s.Lookup(outra)
	assert.True(t, ok)
	assert.False(t, stale, "recursos não declarados ficam intactos")
}

func TestInvalidateKey_AlcancaSoAChaveExata(t *testing.T) {
	s := memcache.New()
	alvo := query.NewKey("payble", int64(7))
	vizinho := query.NewKey("payble", int64(8))
	s.Put(alvo, "a")
	s.Put(vizinho, "b")

	s.InvalidateKey(alvo)

	_, _, stale := s.Lookup(alvo)
	assert.True(t, stale)
	_, _, stale = s.Lookup(vizinho)
	assert.False(t, stale)
}

func TestPut_RevalidaEntradaStale(t *testing.T) {
	s := memcache.New()
	k := query.NewKey("sales-list", 1)
	s.Put(k, "velho")
	s.Invalidate("sales-list")

	s.Put(k, "novo")
	v, ok, stale := s.Lookup(k)
	require.True(t, ok)
	assert.False(t, stale, "Put fresco substitui a entrada stale")
	assert.Equal(t, "novo", v)
}

func TestReset(t *testing.T) {
	s := memcache.New()
	s.Put(query.NewKey("sales-list", 1), "a")
	s.Reset()
	_, ok, _ := s.Lookup(query.NewKey("sales-list", 1))
	assert.False(t, ok)
}

// Acessos concorrentes não podem corromper o mapa (rodar com -race).
func TestAcessoConcorrente(t *testing.T) {
	s := memcache.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			k := query.NewKey("sales-list", n%4)
			for j := 0; j < 100; j++ {
				s.Put(k, j)
				s.Lookup(k)
				s.Invalidate("sales-list")
			}
		}(i)
	}
	wg.Wait()
}
