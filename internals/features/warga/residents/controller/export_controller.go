package controller

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/service"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
	"github.com/pesafrisma19/wargakemang/internals/helpers/dbtime"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func attachment(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

// GET /api/warga/export/xlsx
func (rc *ResidentController) ExportXLSX(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := rc.Svc.ListAll(c.UserContext(), scope, listFilter(c))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var buf bytes.Buffer
	if err := service.WriteResidentsXLSX(&buf, rows); err != nil {
		return helper.FromFiberError(c, err)
	}
	return attachment(c, mimeXLSX, service.ExportFilename("xlsx", dbtime.Now()), buf.Bytes())
}

// GET /api/warga/export/pdf
func (rc *ResidentController) ExportPDF(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := rc.Svc.ListAll(c.UserContext(), scope, listFilter(c))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := dbtime.Now()
	var buf bytes.Buffer
	if err := service.WriteResidentsPDF(&buf, rows, now); err != nil {
		return helper.FromFiberError(c, err)
	}
	return attachment(c, "application/pdf", service.ExportFilename("pdf", now), buf.Bytes())
}

// GET /api/dashboard
func (rc *ResidentController) Dashboard(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	d, err := rc.Svc.Dashboard(c.UserContext(), scope)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Statistik warga", d)
}
