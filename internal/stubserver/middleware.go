package stubserver

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/pkg/token"
)

// authMiddleware exige Bearer token válido e carrega os claims nos locals.
func authMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token ausente"})
		}
		claims, err := token.Parse(secret, raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}
