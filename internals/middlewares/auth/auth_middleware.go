package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

// AuthMiddleware memverifikasi JWT lalu menyimpan id, role, rt, rw ke Locals.
func AuthMiddleware(secret string, blacklist TokenBlacklist) fiber.Handler {
	if blacklist == nil {
		blacklist = NoopBlacklist{}
	}
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := helperAuth.ParseAccessToken(secret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak valid atau kedaluwarsa")
		}

		black, err := blacklist.IsBlacklisted(c.UserContext(), tokenString)
		if err != nil {
			// redis mati: jangan kunci semua user, cukup dicatat
			log.Printf("[WARN] cek blacklist gagal: %v", err)
		} else if black {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		c.Locals(helperAuth.LocalUserID, claims.UserID.String())
		c.Locals(helperAuth.LocalRole, claims.Role)
		c.Locals(helperAuth.LocalRT, claims.RT)
		c.Locals(helperAuth.LocalRW, claims.RW)
		c.Locals(helperAuth.LocalName, claims.Name)
		c.Locals(helperAuth.LocalToken, tokenString)
		return c.Next()
	}
}
