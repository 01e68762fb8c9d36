package dto

// PageMeta metadados de paginação devolvidos pelos listados.
type PageMeta struct {
	Skip  int `json:"skip"`
	Take  int `json:"take"`
	Total int `json:"total"`
}

// Page envelope padrão dos endpoints de lista: {data, meta}.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// ErrorResponse corpo estruturado de erro da API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
