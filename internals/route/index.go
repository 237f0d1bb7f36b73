package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "github.com/pesafrisma19/wargakemang/internals/features/users/auth/route"
	userRoute "github.com/pesafrisma19/wargakemang/internals/features/users/user/route"
	familyRoute "github.com/pesafrisma19/wargakemang/internals/features/warga/families/route"
	residentRoute "github.com/pesafrisma19/wargakemang/internals/features/warga/residents/route"
	"github.com/pesafrisma19/wargakemang/internals/helpers/storage"
	authMiddleware "github.com/pesafrisma19/wargakemang/internals/middlewares/auth"
)

var startTime time.Time

// Deps: dependency luar yang dibuat di main
type Deps struct {
	JWTSecret string
	Blacklist authMiddleware.TokenBlacklist
	Storage   storage.Storage
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (PUBLIC) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, deps.JWTSecret, deps.Blacklist)

	// ===================== PRIVATE (admin + rt) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(deps.JWTSecret, deps.Blacklist))

	log.Println("[INFO] Mounting Warga routes...")
	residentRoute.ResidentRoutes(api, db, deps.Storage)
	familyRoute.FamilyRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting User admin routes...")
	userRoute.UserAdminRoutes(api, db)
}
