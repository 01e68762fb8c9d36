// Package sniff classifica payloads binários pelos primeiros bytes.
//
// O Content-Type devolvido por alguns endpoints de arquivo (recibos, boletos)
// não é confiável; a classificação parte da assinatura do conteúdo.
package sniff

import "bytes"

// MediaType tipo de mídia detectado.
type MediaType string

const (
	PDF     MediaType = "application/pdf"
	JPEG    MediaType = "image/jpeg"
	PNG     MediaType = "image/png"
	Unknown MediaType = ""
)

var (
	magicPDF  = []byte{0x25, 0x50, 0x44, 0x46} // "%PDF"
	magicJPEG = []byte{0xFF, 0xD8, 0xFF}
	magicPNG  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// Classify inspeciona os primeiros bytes do payload e devolve o tipo detectado.
// Devolve Unknown quando nenhuma assinatura conhecida casa.
func Classify(b []byte) MediaType {
	switch {
	case bytes.HasPrefix(b, magicPDF):
		return PDF
	case bytes.HasPrefix(b, magicJPEG):
		return JPEG
	case bytes.HasPrefix(b, magicPNG):
		return PNG
	default:
		return Unknown
	}
}

// Ext devolve a extensão de arquivo usual para o tipo ("" para Unknown).
func (m MediaType) Ext() string {
	switch m {
	case PDF:
		return ".pdf"
	case JPEG:
		return ".jpg"
	case PNG:
		return ".png"
	default:
		return ""
	}
}
