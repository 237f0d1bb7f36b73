package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pesafrisma19/wargakemang/internals/features/users/auth/service"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	res, err := ac.Svc.Login(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(helperAuth.LocalToken).(string)
	claims, err := helperAuth.ParseAccessToken(ac.Svc.Secret, token)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token tidak valid")
	}
	ac.Svc.Logout(c.UserContext(), token, claims.Exp)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	scope, err := helperAuth.ScopeFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	u, err := ac.Svc.Me(c.UserContext(), scope.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Profil user", fiber.Map{"user": u})
}
