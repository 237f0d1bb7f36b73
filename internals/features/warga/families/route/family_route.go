package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/families/controller"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
)

// FamilyRoutes: /keluarga, admin dan RT (scope di-handle repository)
func FamilyRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFamilyController(repository.NewGormRepository(db))

	g := r.Group("/keluarga")
	g.Get("/", ctrl.List)
	g.Get("/:no_kk", ctrl.Get)
}
