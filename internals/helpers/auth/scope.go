package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pesafrisma19/wargakemang/internals/constants"
)

// Locals key yang diisi AuthMiddleware
const (
	LocalUserID = "user_id"
	LocalRole   = "userRole"
	LocalRT     = "user_rt"
	LocalRW     = "user_rw"
	LocalName   = "user_name"
	LocalToken  = "access_token"
)

// Scope: wilayah data yang boleh dilihat/diubah user.
// Admin melihat semua; role rt hanya RT/RW miliknya.
type Scope struct {
	UserID uuid.UUID
	Role   string
	RT     string
	RW     string
}

func AdminScope() Scope { return Scope{Role: constants.RoleAdmin} }

func RTScope(rt, rw string) Scope { return Scope{Role: constants.RoleRT, RT: rt, RW: rw} }

func (s Scope) IsAdmin() bool { return s.Role == constants.RoleAdmin }

// Contains: apakah RT/RW berada di dalam scope
func (s Scope) Contains(rt, rw string) bool {
	if s.IsAdmin() {
		return true
	}
	return s.RT != "" && s.RT == rt && s.RW == rw
}

// ScopeFromCtx membaca scope dari Locals. Role rt tanpa RT/RW dianggap tidak sah.
func ScopeFromCtx(c *fiber.Ctx) (Scope, error) {
	role, _ := c.Locals(LocalRole).(string)
	if role == "" {
		return Scope{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role not found")
	}
	s := Scope{Role: role}
	if idStr, ok := c.Locals(LocalUserID).(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			s.UserID = id
		}
	}
	if s.IsAdmin() {
		return s, nil
	}
	s.RT, _ = c.Locals(LocalRT).(string)
	s.RW, _ = c.Locals(LocalRW).(string)
	if strings.TrimSpace(s.RT) == "" || strings.TrimSpace(s.RW) == "" {
		return Scope{}, fiber.NewError(fiber.StatusForbidden, "Akun RT belum memiliki RT/RW")
	}
	return s, nil
}
