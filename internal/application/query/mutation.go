package query

import "context"

// runMutation executa uma escrita e, só em caso de sucesso, aplica as
// invalidações declaradas para a operação (ver invalidation.go). Em falha
// nada é invalidado e o erro sobe intacto para o chamador.
//
// id identifica o registro alvo quando a operação também invalida a chave
// de detalhe (updates e baixas); em criações passa-se 0.
func runMutation[Out any](ctx context.Context, c *Client, op string, id int64, fn func(context.Context) (Out, error)) (Out, error) {
	out, err := fn(ctx)
	if err != nil {
		return out, err
	}
	eff := EffectOf(op)
	for _, resource := range eff.Resources {
		c.store.Invalidate(resource)
	}
	if eff.Detail != "" {
		c.store.InvalidateKey(NewKey(eff.Detail, id))
	}
	c.log.Debug().Str("op", op).Int64("id", id).Msg("escrita aplicada, caches invalidados")
	return out, nil
}
