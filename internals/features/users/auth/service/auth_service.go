package service

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	userDTO "github.com/pesafrisma19/wargakemang/internals/features/users/user/dto"
	userModel "github.com/pesafrisma19/wargakemang/internals/features/users/user/model"
	userRepo "github.com/pesafrisma19/wargakemang/internals/features/users/user/repository"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
	authMiddleware "github.com/pesafrisma19/wargakemang/internals/middlewares/auth"
)

const errBadCredentials = "Nomor HP atau password salah"

type AuthService struct {
	Users     userRepo.Repository
	Secret    string
	Blacklist authMiddleware.TokenBlacklist
	Now       func() time.Time
}

func NewAuthService(users userRepo.Repository, secret string, bl authMiddleware.TokenBlacklist) *AuthService {
	if bl == nil {
		bl = authMiddleware.NoopBlacklist{}
	}
	return &AuthService{Users: users, Secret: secret, Blacklist: bl, Now: time.Now}
}

type LoginResult struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresAt   time.Time            `json:"expires_at"`
	User        *userModel.UserModel `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, phone, password string) (*LoginResult, error) {
	phone = userDTO.NormalizePhone(phone)
	if phone == "" || password == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nomor HP dan password wajib diisi")
	}

	u, err := s.Users.FindByPhone(ctx, phone)
	if err != nil {
		log.Printf("[ERROR] login lookup: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if u == nil || helperAuth.CheckPasswordHash(u.PasswordHash, password) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, errBadCredentials)
	}

	rt, rw := u.Area()
	token, exp, err := helperAuth.IssueAccessToken(s.Secret, helperAuth.AccessClaims{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
		RT:     rt,
		RW:     rw,
	}, s.Now())
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return &LoginResult{AccessToken: token, TokenType: "Bearer", ExpiresAt: exp, User: u}, nil
}

// Logout: token masuk blacklist sampai exp. Gagal simpan hanya dicatat.
func (s *AuthService) Logout(ctx context.Context, token string, exp time.Time) {
	if token == "" {
		log.Println("[INFO] Logout tanpa access token")
		return
	}
	if exp.IsZero() {
		exp = s.Now().Add(helperAuth.AccessTokenTTL)
	}
	if err := s.Blacklist.Add(ctx, token, exp); err != nil {
		log.Printf("[WARN] Failed to blacklist token: %v", err)
	}
}

func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		log.Printf("[ERROR] me: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if u == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	return u, nil
}
