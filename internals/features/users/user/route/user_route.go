package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/constants"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/controller"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/repository"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/service"
	authMiddleware "github.com/pesafrisma19/wargakemang/internals/middlewares/auth"
)

// UserAdminRoutes: /users, khusus admin
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(service.NewUserService(repository.NewGormRepository(db)))

	g := r.Group("/users", authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdmin("manajemen user"),
		constants.AdminOnly,
	))
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/reset-password", ctrl.ResetPassword)
}
