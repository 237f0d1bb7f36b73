package controller

import (
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/pesafrisma19/wargakemang/internals/constants"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/dto"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/service"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

const maxPhotoSize = 5 * 1024 * 1024

type ResidentController struct {
	Svc      *service.ResidentService
	Validate *validator.Validate
}

func NewResidentController(svc *service.ResidentService) *ResidentController {
	return &ResidentController{Svc: svc, Validate: validator.New()}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID warga tidak valid")
	}
	return id, nil
}

func listFilter(c *fiber.Ctx) repository.ListFilter {
	return repository.ListFilter{
		Q:  strings.TrimSpace(c.Query("q")),
		RT: strings.TrimSpace(c.Query("rt")),
		RW: strings.TrimSpace(c.Query("rw")),
	}
}

// readPhoto: nil kalau field file tidak dikirim
func readPhoto(c *fiber.Ctx, field string) (*service.PhotoUpload, error) {
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file "+field)
	}
	if constants.DetectFileTypeFromExt(fh.Filename) != constants.FileImage {
		return nil, fiber.NewError(fiber.StatusBadRequest, field+" harus berupa gambar (jpg, png, webp)")
	}
	if fh.Size > maxPhotoSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran "+field+" maksimal 5MB")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal membuka file "+field)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file "+field)
	}
	return &service.PhotoUpload{Filename: fh.Filename, Data: data}, nil
}

func readUploads(c *fiber.Ctx) (service.Uploads, error) {
	ktp, err := readPhoto(c, "foto_ktp")
	if err != nil {
		return service.Uploads{}, err
	}
	kk, err := readPhoto(c, "foto_kk")
	if err != nil {
		return service.Uploads{}, err
	}
	return service.Uploads{KTP: ktp, KK: kk}, nil
}

// GET /api/warga
func (rc *ResidentController) List(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, meta, err := rc.Svc.List(c.UserContext(), scope, listFilter(c), p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Daftar warga", rows, &meta)
}

// GET /api/warga/:id
func (rc *ResidentController) Get(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := rc.Svc.Get(c.UserContext(), scope, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail warga", m)
}

// POST /api/warga (JSON atau multipart dengan foto_ktp / foto_kk)
func (rc *ResidentController) Create(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateResidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize(rc.Svc.Region)
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	uploads, err := readUploads(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := rc.Svc.Create(c.UserContext(), scope, &req, uploads)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Data warga berhasil disimpan", m)
}

// PATCH /api/warga/:id
func (rc *ResidentController) Update(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateResidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	uploads, err := readUploads(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := rc.Svc.Update(c.UserContext(), scope, id, &req, uploads)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Data warga berhasil diperbarui", m)
}

// DELETE /api/warga/:id
func (rc *ResidentController) Delete(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := rc.Svc.Delete(c.UserContext(), scope, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Data warga berhasil dihapus", fiber.Map{"id": id})
}
