package query

import (
	"encoding/json"
	"fmt"
)

// Key identifica uma entrada de cache: nome lógico do recurso mais os
// parâmetros serializados. Duas consultas com recurso igual e parâmetros
// deep-equal produzem a mesma chave.
type Key struct {
	Resource string
	params   string
}

// NewKey deriva a chave de um recurso e seus parâmetros.
// A serialização JSON de structs é determinística (ordem dos campos),
// então parâmetros iguais geram sempre a mesma chave.
func NewKey(resource string, params any) Key {
	if params == nil {
		return Key{Resource: resource}
	}
	b, err := json.Marshal(params)
	if err != nil {
		// Tipos não serializáveis não ocorrem nos filtros; fallback textual.
		return Key{Resource: resource, params: fmt.Sprintf("%+v", params)}
	}
	return Key{Resource: resource, params: string(b)}
}

func (k Key) String() string {
	if k.params == "" {
		return k.Resource
	}
	return k.Resource + "?" + k.params
}
