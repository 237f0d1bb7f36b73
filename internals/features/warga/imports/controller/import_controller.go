package controller

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/pesafrisma19/wargakemang/internals/constants"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/imports/service"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
	"github.com/pesafrisma19/wargakemang/internals/helpers/metrics"
	"github.com/pesafrisma19/wargakemang/internals/helpers/spreadsheet"
)

const (
	maxImportSize   = 10 * 1024 * 1024
	errorPreviewMax = 5
	mimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ImportController struct {
	Svc       *service.ImportService
	Validator service.Validator
}

func NewImportController(svc *service.ImportService) *ImportController {
	return &ImportController{Svc: svc, Validator: service.NewValidator(svc.Region)}
}

type PreviewResponse struct {
	ValidRows    []service.ImportRow `json:"valid_rows"`
	Errors       []string            `json:"errors"`
	ErrorPreview []string            `json:"error_preview"`
	MoreErrors   int                 `json:"more_errors"`
}

type CommitRequest struct {
	Rows []service.ImportRow `json:"rows"`
}

func toPreview(res service.Result) PreviewResponse {
	out := PreviewResponse{ValidRows: res.Valid, Errors: res.Errors, ErrorPreview: res.Errors}
	if n := len(res.Errors); n > errorPreviewMax {
		out.ErrorPreview = res.Errors[:errorPreviewMax]
		out.MoreErrors = n - errorPreviewMax
	}
	return out
}

// GET /api/warga/import/template
func (ic *ImportController) Template(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := service.WriteTemplate(&buf); err != nil {
		return helper.FromFiberError(c, err)
	}
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, service.TemplateFilename))
	return c.Send(buf.Bytes())
}

// POST /api/warga/import/preview (multipart, field "file")
func (ic *ImportController) Preview(c *fiber.Ctx) error {
	if _, err := helperAuth.ScopeFromCtx(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File wajib diupload (field: file)")
	}
	if fh.Size > maxImportSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 10MB")
	}
	if constants.DetectFileTypeFromExt(fh.Filename) != constants.FileSpreadsheet {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format file harus .xlsx")
	}

	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer f.Close()

	rows, err := spreadsheet.ReadFirstSheet(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak bisa dibaca: "+err.Error())
	}

	res := ic.Validator.Validate(rows)
	metrics.ImportRows.WithLabelValues("valid").Add(float64(len(res.Valid)))
	metrics.ImportRows.WithLabelValues("invalid").Add(float64(len(res.Errors)))

	return helper.JsonOK(c, fmt.Sprintf("%d baris valid, %d baris error", len(res.Valid), len(res.Errors)), toPreview(res))
}

// POST /api/warga/import
func (ic *ImportController) Commit(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req CommitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	entry, err := ic.Svc.Commit(c.UserContext(), scope, req.Rows)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, fmt.Sprintf("%d data warga berhasil diimport", entry.RowCount), fiber.Map{
		"imported": entry.RowCount,
		"log_id":   entry.ID,
	})
}

// GET /api/warga/import/logs (admin)
func (ic *ImportController) Logs(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, meta, err := ic.Svc.ListLogs(c.UserContext(), p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Riwayat import", rows, &meta)
}
