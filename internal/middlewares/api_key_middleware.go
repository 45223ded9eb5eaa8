package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

const bearerPrefix = "Bearer "

// APIKeyMiddleware rejects requests whose Authorization header does not carry
// apiKey as a bearer token.
func APIKeyMiddleware(apiKey string) fiber.Handler {
	expected := []byte(apiKey)

	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			log.Warn().Str("path", c.Path()).Msg("Request without bearer token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing bearer token",
			})
		}

		provided := []byte(strings.TrimPrefix(header, bearerPrefix))
		if subtle.ConstantTimeCompare(provided, expected) != 1 {
			log.Warn().Str("path", c.Path()).Msg("Request with invalid bearer token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid bearer token",
			})
		}

		return c.Next()
	}
}
