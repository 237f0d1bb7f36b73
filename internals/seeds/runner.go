package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	userRepo "github.com/pesafrisma19/wargakemang/internals/features/users/user/repository"
	"github.com/pesafrisma19/wargakemang/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User
	_, err := users.SeedAdmin(context.Background(), userRepo.NewGormRepository(db),
		configs.GetEnv("ADMIN_NAME"),
		configs.GetEnv("ADMIN_PHONE"),
		configs.GetEnv("ADMIN_PASSWORD"),
	)
	if err != nil {
		log.Printf("❌ Seed admin gagal: %v", err)
	}
}
