package users

import (
	"context"
	"log"

	"github.com/pesafrisma19/wargakemang/internals/constants"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/dto"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/model"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/repository"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

// SeedAdmin membuat admin pertama kalau tabel users masih kosong.
// Return true kalau admin baru dibuat.
func SeedAdmin(ctx context.Context, repo repository.Repository, name, phone, password string) (bool, error) {
	phone = dto.NormalizePhone(phone)
	if phone == "" || password == "" {
		log.Println("ℹ️ ADMIN_PHONE/ADMIN_PASSWORD kosong, seed admin dilewati")
		return false, nil
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := helperAuth.HashPassword(password)
	if err != nil {
		return false, err
	}
	if name == "" {
		name = "Admin Desa"
	}
	admin := &model.UserModel{
		Name:         name,
		Phone:        phone,
		Role:         constants.RoleAdmin,
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return false, err
	}
	log.Printf("✅ Admin awal dibuat: %s", phone)
	return true, nil
}
