package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel: akun pengurus (admin desa atau ketua RT)
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone        string    `gorm:"size:20;not null;uniqueIndex:uq_users_phone" json:"phone"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Role         string    `gorm:"type:varchar(10);not null;default:'rt'" json:"role"`
	RT           *string   `gorm:"size:3" json:"rt"`
	RW           *string   `gorm:"size:3" json:"rw"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// Area: RT/RW dalam bentuk string, kosong kalau nil
func (u UserModel) Area() (rt, rw string) {
	if u.RT != nil {
		rt = *u.RT
	}
	if u.RW != nil {
		rw = *u.RW
	}
	return rt, rw
}
