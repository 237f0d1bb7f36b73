package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const AccessTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("token tidak valid")

// AccessClaims: isi token akses
type AccessClaims struct {
	UserID uuid.UUID
	Name   string
	Role   string
	RT     string
	RW     string
	Exp    time.Time
}

// IssueAccessToken membuat JWT HS256 dengan klaim id, role, rt, rw.
func IssueAccessToken(secret string, c AccessClaims, now time.Time) (string, time.Time, error) {
	if strings.TrimSpace(secret) == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}
	exp := now.Add(AccessTokenTTL)
	claims := jwt.MapClaims{
		"id":        c.UserID.String(),
		"user_name": c.Name,
		"role":      c.Role,
		"rt":        c.RT,
		"rw":        c.RW,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("gagal tanda tangan token: %w", err)
	}
	return signed, exp, nil
}

// ParseAccessToken memverifikasi signature + exp lalu mengembalikan klaim.
func ParseAccessToken(secret, raw string) (AccessClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return AccessClaims{}, ErrInvalidToken
	}

	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return AccessClaims{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return AccessClaims{}, ErrInvalidToken
	}

	out := AccessClaims{UserID: id, Role: role}
	out.Name, _ = claims["user_name"].(string)
	out.RT, _ = claims["rt"].(string)
	out.RW, _ = claims["rw"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		out.Exp = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}
