package stubserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "jose", fold("José"))
	assert.Equal(t, "papelao", fold("PAPELÃO"))
	assert.Equal(t, "aluminio", fold("Alumínio"))
	assert.Equal(t, "cafe com acucar", fold("Café com Açúcar"))
}

func TestNameMatches(t *testing.T) {
	assert.True(t, nameMatches("José da Silva Sucatas", "jose"))
	assert.True(t, nameMatches("José da Silva Sucatas", "SILVA"))
	assert.True(t, nameMatches("Maria Aparecida", ""), "busca vazia casa com tudo")
	assert.False(t, nameMatches("Maria Aparecida", "jose"))
}
