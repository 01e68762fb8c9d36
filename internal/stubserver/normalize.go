package stubserver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer remove marcas diacríticas: decompõe (NFD), descarta os
// combining marks e recompõe (NFC). "José" -> "Jose".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza para comparação: sem acentos e em minúsculas.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// nameMatches busca textual acento-insensível por substring.
func nameMatches(name, queryStr string) bool {
	if queryStr == "" {
		return true
	}
	return strings.Contains(fold(name), fold(queryStr))
}
