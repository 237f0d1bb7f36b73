package dto

import (
	"strings"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
	RT       string `json:"rt" validate:"omitempty,len=3,numeric"`
	RW       string `json:"rw" validate:"omitempty,len=3,numeric"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
	RT    *string `json:"rt" validate:"omitempty,len=3,numeric"`
	RW    *string `json:"rw" validate:"omitempty,len=3,numeric"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// NormalizePhone: buang spasi dan tanda hubung
func NormalizePhone(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = NormalizePhone(r.Phone)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.RT = strings.TrimSpace(r.RT)
	r.RW = strings.TrimSpace(r.RW)
}

func (r *UpdateUserRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Phone != nil {
		v := NormalizePhone(*r.Phone)
		r.Phone = &v
	}
	if r.Role != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &v
	}
	if r.RT != nil {
		v := strings.TrimSpace(*r.RT)
		r.RT = &v
	}
	if r.RW != nil {
		v := strings.TrimSpace(*r.RW)
		r.RW = &v
	}
}
