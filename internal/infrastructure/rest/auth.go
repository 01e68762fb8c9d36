package rest

import (
	"context"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/pkg/token"
)

// Login autentica no POST /login e guarda o token bearer para as próximas
// chamadas. Devolve também a identidade e o papel do usuário.
func (c *Client) Login(ctx context.Context, username, password string) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Username: username, Password: password}
	if err := c.postJSON(ctx, "/login", in, &out); err != nil {
		return dto.LoginResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

// Role devolve o papel do usuário lido do token corrente ("" sem login).
// Decide apenas o que a interface mostra; o backend é quem autoriza.
func (c *Client) Role() string {
	if c.token == "" {
		return ""
	}
	return token.ReadRole(c.token)
}
