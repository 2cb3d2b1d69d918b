package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shoplite/internal/token"
)

// localUsername is the Locals key the auth middleware fills in.
const localUsername = "username"

// AuthRequired checks for a valid Bearer token and stores the verified
// username in the request locals. The two failure messages are part of the
// API contract: a missing or non-Bearer header vs. a token that does not
// verify. Nothing about why verification failed is exposed.
func AuthRequired(codec *token.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		username, err := codec.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(localUsername, username)
		return c.Next()
	}
}

// Username returns the verified username set by AuthRequired.
func Username(c *fiber.Ctx) string {
	v := c.Locals(localUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
