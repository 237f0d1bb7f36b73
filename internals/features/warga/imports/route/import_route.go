package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	"github.com/pesafrisma19/wargakemang/internals/constants"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/imports/controller"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/imports/service"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	"github.com/pesafrisma19/wargakemang/internals/middlewares"
	authMiddleware "github.com/pesafrisma19/wargakemang/internals/middlewares/auth"
)

// ImportRoutes dipasang di bawah group /warga sebelum route /:id
func ImportRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewImportService(db, repository.NewGormRepository(db), configs.Region)
	ctrl := controller.NewImportController(svc)

	g := r.Group("/import")
	g.Get("/template", ctrl.Template)
	g.Post("/preview", middlewares.ImportRateLimiter(), ctrl.Preview)
	g.Post("/", middlewares.ImportRateLimiter(), ctrl.Commit)
	g.Get("/logs",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("riwayat import"), constants.RoleAdmin),
		ctrl.Logs,
	)
}
