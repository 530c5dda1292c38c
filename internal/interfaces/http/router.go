package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reports   *ReportHandler
	JWTSecret string
}

// Router registra las rutas de la API.
//
// Con JWTSecret vacío los reportes quedan públicos (modo desarrollo); con
// secret configurado exigen Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health (público)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	reports := api.Group("/reports")
	if deps.JWTSecret != "" {
		reports.Use(AuthMiddleware(deps.JWTSecret))
	}
	reports.Get("/", deps.Reports.Catalog)
	reports.Get("/all", deps.Reports.All)
	reports.Get("/:slug", deps.Reports.Get)
}
