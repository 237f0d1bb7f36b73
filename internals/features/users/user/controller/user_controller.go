package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pesafrisma19/wargakemang/internals/features/users/user/dto"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/service"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

type UserController struct {
	Svc      *service.UserService
	Validate *validator.Validate
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Svc: svc, Validate: validator.New()}
}

func parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID user tidak valid")
	}
	return id, nil
}

// GET /api/users
func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := uc.Svc.List(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar user", users)
}

// POST /api/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	u, err := uc.Svc.Create(c.UserContext(), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "User berhasil dibuat", u)
}

// PATCH /api/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	u, err := uc.Svc.Update(c.UserContext(), id, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", u)
}

// DELETE /api/users/:id
func (uc *UserController) Delete(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := uc.Svc.Delete(c.UserContext(), scope.UserID, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}

// POST /api/users/:id/reset-password
func (uc *UserController) ResetPassword(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := uc.Svc.ResetPassword(c.UserContext(), id, req.Password); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Password berhasil direset", nil)
}
