package stubserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/pkg/config"
	"github.com/ecogest/ecogest-go/pkg/token"
)

// loginHandler POST /login: verifica as credenciais e emite o token bearer.
func loginHandler(d *Dataset, cfg config.StubConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.LoginRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		}

		d.mu.Lock()
		var found *stubUser
		for _, u := range d.users {
			if u.Username == in.Username {
				u := u
				found = &u
				break
			}
		}
		d.mu.Unlock()

		if found == nil || bcrypt.CompareHashAndPassword(found.PasswordHash, []byte(in.Password)) != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário ou senha incorretos"})
		}

		tok, err := token.Generate(cfg.JWTSecret, found.ID, found.Username, found.Role, cfg.JWTIssuer, cfg.JWTExpiration)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(dto.LoginResponse{Token: tok, User: found.User})
	}
}
