package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/features/users/user/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.UserModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	FindByPhone(ctx context.Context, phone string) (*model.UserModel, error)
	Create(ctx context.Context, u *model.UserModel) error
	Save(ctx context.Context, u *model.UserModel) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) List(ctx context.Context) ([]model.UserModel, error) {
	var out []model.UserModel
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

// first: nil, nil kalau tidak ada
func (r *GormRepository) first(ctx context.Context, query string, arg any) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormRepository) FindByPhone(ctx context.Context, phone string) (*model.UserModel, error) {
	return r.first(ctx, "phone = ?", phone)
}

func (r *GormRepository) Create(ctx context.Context, u *model.UserModel) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepository) Save(ctx context.Context, u *model.UserModel) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *GormRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	return res.RowsAffected, res.Error
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.UserModel{}).Count(&n).Error
	return n, err
}
