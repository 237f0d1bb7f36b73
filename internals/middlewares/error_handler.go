package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
)

// ErrorHandler: semua error yang lolos dari handler dibungkus format JSON standar
func ErrorHandler(c *fiber.Ctx, err error) error {
	return helper.FromFiberError(c, err)
}
