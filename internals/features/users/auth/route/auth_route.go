package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/features/users/auth/controller"
	"github.com/pesafrisma19/wargakemang/internals/features/users/auth/service"
	userRepo "github.com/pesafrisma19/wargakemang/internals/features/users/user/repository"
	"github.com/pesafrisma19/wargakemang/internals/middlewares"
	authMiddleware "github.com/pesafrisma19/wargakemang/internals/middlewares/auth"
)

// AuthRoutes: /api/auth. Login publik, logout & me butuh token.
func AuthRoutes(app *fiber.App, db *gorm.DB, secret string, bl authMiddleware.TokenBlacklist) {
	svc := service.NewAuthService(userRepo.NewGormRepository(db), secret, bl)
	ctrl := controller.NewAuthController(svc)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	requireAuth := authMiddleware.AuthMiddleware(secret, bl)
	g.Post("/logout", requireAuth, ctrl.Logout)
	g.Get("/me", requireAuth, ctrl.Me)
}
