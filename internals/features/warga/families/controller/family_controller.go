package controller

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/families/service"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

type FamilyController struct {
	Repo       repository.Repository
	Aggregator service.Aggregator
}

func NewFamilyController(repo repository.Repository) *FamilyController {
	return &FamilyController{Repo: repo, Aggregator: service.NewAggregator()}
}

// GET /api/keluarga?q=
func (fc *FamilyController) List(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	residents, err := fc.Repo.ListWithFamily(c.UserContext(), scope)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}

	families := service.Search(fc.Aggregator.Group(residents), c.Query("q"))
	service.SortByNoKK(families)

	totalAnggota := 0
	for _, f := range families {
		totalAnggota += f.JumlahAnggota
	}
	if families == nil {
		families = []service.Family{}
	}
	return helper.JsonOK(c, "Daftar keluarga", fiber.Map{
		"keluarga":       families,
		"total_keluarga": len(families),
		"total_anggota":  totalAnggota,
	})
}

// GET /api/keluarga/:no_kk
func (fc *FamilyController) Get(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	noKK, err := url.PathUnescape(c.Params("no_kk"))
	if err != nil || strings.TrimSpace(noKK) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No. KK tidak valid")
	}

	residents, err := fc.Repo.FindByFamily(c.UserContext(), scope, noKK)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}
	families := fc.Aggregator.Group(residents)
	if len(families) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail keluarga", families[0])
}
