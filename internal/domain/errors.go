package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("não autorizado")
	ErrForbidden       = errors.New("acesso negado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrConflict        = errors.New("conflito com o estado atual")
	ErrTotalDivergente = errors.New("total divergente da soma dos itens")
	ErrOrigemAmbigua   = errors.New("título com mais de uma origem")
	ErrPagoSemData     = errors.New("status Pago exige data de pagamento")
)
