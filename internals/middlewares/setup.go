package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pesafrisma19/wargakemang/internals/middlewares/logger"
)

// SetupMiddlewares: urutan penting, recover paling luar
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(GlobalRateLimiter())
}
