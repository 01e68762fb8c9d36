package dto

import "github.com/ecogest/ecogest-go/internal/domain/entity"

// LoginRequest payload do POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token bearer mais identidade e papel do usuário.
type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}
