package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shoplite/internal/errs"
	"shoplite/pkg/logger"
)

// writeError translates a service error into the `{"error": <message>}` JSON
// contract with the status its kind maps to. Unclassified errors become an
// opaque 500 so internals never leak to clients.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status := errs.StatusCode(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		message = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// RegisterSystemRoutes adds the health and environment endpoints every
// service exposes.
func RegisterSystemRoutes(app *fiber.App, serviceName, env string) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": serviceName,
			"env":     env,
		})
	})
	app.Get("/env", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"env": env})
	})
}
