package service

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pesafrisma19/wargakemang/internals/constants"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/dto"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/model"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/repository"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

type UserService struct {
	Repo repository.Repository
}

func NewUserService(repo repository.Repository) *UserService {
	return &UserService{Repo: repo}
}

func serverError(op string, err error) error {
	log.Printf("[ERROR] %s: %v", op, err)
	return fiber.NewError(fiber.StatusInternalServerError, "Gagal "+op)
}

// applyArea: role rt wajib punya RT/RW, admin selalu nil
func applyArea(u *model.UserModel, rt, rw string) error {
	if u.Role == constants.RoleAdmin {
		u.RT, u.RW = nil, nil
		return nil
	}
	if rt == "" || rw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "RT dan RW wajib diisi untuk role RT")
	}
	u.RT, u.RW = &rt, &rw
	return nil
}

func (s *UserService) ensurePhoneFree(ctx context.Context, phone string, exclude uuid.UUID) error {
	existing, err := s.Repo.FindByPhone(ctx, phone)
	if err != nil {
		return serverError("memeriksa nomor HP", err)
	}
	if existing != nil && existing.ID != exclude {
		return fiber.NewError(fiber.StatusConflict, "Nomor HP sudah terdaftar")
	}
	return nil
}

func (s *UserService) List(ctx context.Context) ([]model.UserModel, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, serverError("mengambil data user", err)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.UserModel, error) {
	if req.Name == "" || req.Phone == "" || req.Password == "" || req.Role == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Semua field wajib diisi")
	}
	if len(req.Password) < helperAuth.MinPasswordLength {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Password minimal 6 karakter")
	}
	if !constants.IsValidRole(req.Role) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Role tidak valid")
	}

	u := &model.UserModel{Name: req.Name, Phone: req.Phone, Role: req.Role}
	if err := applyArea(u, req.RT, req.RW); err != nil {
		return nil, err
	}
	if err := s.ensurePhoneFree(ctx, u.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := helperAuth.HashPassword(req.Password)
	if err != nil {
		return nil, serverError("membuat password", err)
	}
	u.PasswordHash = hash

	if err := s.Repo.Create(ctx, u); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Nomor HP sudah terdaftar")
		}
		return nil, serverError("membuat user", err)
	}
	return u, nil
}

func (s *UserService) mustFind(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, serverError("mengambil user", err)
	}
	if u == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*model.UserModel, error) {
	u, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Nama wajib diisi")
		}
		u.Name = *req.Name
	}
	if req.Phone != nil && *req.Phone != u.Phone {
		if *req.Phone == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Nomor HP wajib diisi")
		}
		if err := s.ensurePhoneFree(ctx, *req.Phone, u.ID); err != nil {
			return nil, err
		}
		u.Phone = *req.Phone
	}
	if req.Role != nil {
		if !constants.IsValidRole(*req.Role) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Role tidak valid")
		}
		u.Role = *req.Role
	}

	rt, rw := u.Area()
	if req.RT != nil {
		rt = *req.RT
	}
	if req.RW != nil {
		rw = *req.RW
	}
	if err := applyArea(u, rt, rw); err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Nomor HP sudah terdaftar")
		}
		return nil, serverError("memperbarui user", err)
	}
	return u, nil
}

// Delete: admin tidak boleh menghapus akunnya sendiri
func (s *UserService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if actor == id {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return serverError("menghapus user", err)
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, password string) error {
	if len(password) < helperAuth.MinPasswordLength {
		return fiber.NewError(fiber.StatusBadRequest, "Password minimal 6 karakter")
	}
	hash, err := helperAuth.HashPassword(password)
	if err != nil {
		return serverError("membuat password", err)
	}
	n, err := s.Repo.UpdatePassword(ctx, id, hash)
	if err != nil {
		return serverError("reset password", err)
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	return nil
}
