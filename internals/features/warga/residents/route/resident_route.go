package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	importRoute "github.com/pesafrisma19/wargakemang/internals/features/warga/imports/route"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/controller"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/service"
	"github.com/pesafrisma19/wargakemang/internals/helpers/storage"
)

// ResidentRoutes: /warga + /dashboard. Export & import harus didaftarkan sebelum /:id.
func ResidentRoutes(r fiber.Router, db *gorm.DB, st storage.Storage) {
	repo := repository.NewGormRepository(db)
	svc := service.NewResidentService(repo, st, configs.Region, configs.Image)
	ctrl := controller.NewResidentController(svc)

	r.Get("/dashboard", ctrl.Dashboard)

	g := r.Group("/warga")
	g.Get("/export/xlsx", ctrl.ExportXLSX)
	g.Get("/export/pdf", ctrl.ExportPDF)
	importRoute.ImportRoutes(g, db)

	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Patch("/:id", ctrl.Update)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
