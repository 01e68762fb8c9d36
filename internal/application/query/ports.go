package query

// Store é o cache chave-valor injetável do lado de leitura.
// Invalidar marca entradas como stale; a próxima leitura da chave refaz a
// chamada. Não há singleton global: quem monta a aplicação passa o Store.
type Store interface {
	// Lookup devolve o valor, se existe, e se está stale.
	Lookup(k Key) (v any, ok bool, stale bool)
	// Put grava (ou sobrescreve) o valor fresco da chave.
	Put(k Key, v any)
	// Invalidate marca como stale todas as chaves do recurso.
	Invalidate(resource string)
	// InvalidateKey marca como stale uma chave específica.
	InvalidateKey(k Key)
	// Reset esvazia o cache (fim de sessão).
	Reset()
}
