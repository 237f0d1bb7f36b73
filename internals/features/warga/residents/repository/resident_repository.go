package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

var ErrDuplicateNIK = errors.New("nik sudah terdaftar")

// ListFilter: filter list/export warga. RT/RW hanya dipakai untuk admin.
type ListFilter struct {
	Q  string
	RT string
	RW string
}

type Stats struct {
	TotalWarga    int64
	TotalKK       int64
	BySex         map[string]int64
	ByAgama       map[string]int64
	ByStatusKawin map[string]int64
}

type Repository interface {
	Create(ctx context.Context, r *model.ResidentModel) error
	Save(ctx context.Context, r *model.ResidentModel) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ResidentModel, error)
	FindByNIK(ctx context.Context, nik string, excludeID *uuid.UUID) (*model.ResidentModel, error)
	FindByNIKs(ctx context.Context, niks []string) ([]model.ResidentModel, error)
	List(ctx context.Context, scope helperAuth.Scope, f ListFilter, p helper.Params) ([]model.ResidentModel, int64, error)
	ListAll(ctx context.Context, scope helperAuth.Scope, f ListFilter) ([]model.ResidentModel, error)
	ListWithFamily(ctx context.Context, scope helperAuth.Scope) ([]model.ResidentModel, error)
	FindByFamily(ctx context.Context, scope helperAuth.Scope, noKK string) ([]model.ResidentModel, error)
	UpdateFamilyPhoto(ctx context.Context, noKK string, excludeID uuid.UUID, url string) (int64, error)
	Stats(ctx context.Context, scope helperAuth.Scope) (Stats, error)
	Recent(ctx context.Context, scope helperAuth.Scope, n int) ([]model.ResidentModel, error)
}

type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) base(ctx context.Context, scope helperAuth.Scope) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&model.ResidentModel{})
	if !scope.IsAdmin() {
		q = q.Where("rt = ? AND rw = ?", scope.RT, scope.RW)
	}
	return q
}

func applyFilter(q *gorm.DB, scope helperAuth.Scope, f ListFilter) *gorm.DB {
	if s := strings.TrimSpace(f.Q); s != "" {
		like := "%" + s + "%"
		q = q.Where("(LOWER(nama) LIKE ? OR nik LIKE ? OR no_kk LIKE ?)", "%"+strings.ToLower(s)+"%", like, like)
	}
	if scope.IsAdmin() {
		if f.RT != "" {
			q = q.Where("rt = ?", f.RT)
		}
		if f.RW != "" {
			q = q.Where("rw = ?", f.RW)
		}
	}
	return q
}

func (r *GormRepository) Create(ctx context.Context, m *model.ResidentModel) error {
	return translate(r.DB.WithContext(ctx).Create(m).Error)
}

func (r *GormRepository) Save(ctx context.Context, m *model.ResidentModel) error {
	return translate(r.DB.WithContext(ctx).Save(m).Error)
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx := r.DB.WithContext(ctx).Delete(&model.ResidentModel{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ResidentModel, error) {
	var m model.ResidentModel
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByNIK: nil, nil kalau tidak ada
func (r *GormRepository) FindByNIK(ctx context.Context, nik string, excludeID *uuid.UUID) (*model.ResidentModel, error) {
	q := r.DB.WithContext(ctx).Where("nik = ?", nik)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var rows []model.ResidentModel
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *GormRepository) FindByNIKs(ctx context.Context, niks []string) ([]model.ResidentModel, error) {
	var rows []model.ResidentModel
	if len(niks) == 0 {
		return rows, nil
	}
	err := r.DB.WithContext(ctx).Select("id", "nik", "nama").Where("nik IN ?", niks).Find(&rows).Error
	return rows, err
}

var listSort = map[string]string{
	"created_at": "created_at",
	"nama":       "nama",
	"nik":        "nik",
	"rt":         "rt",
}

func (r *GormRepository) List(ctx context.Context, scope helperAuth.Scope, f ListFilter, p helper.Params) ([]model.ResidentModel, int64, error) {
	q := applyFilter(r.base(ctx, scope), scope, f)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ResidentModel
	err := q.Order(p.OrderClause(listSort, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error
	return rows, total, err
}

func (r *GormRepository) ListAll(ctx context.Context, scope helperAuth.Scope, f ListFilter) ([]model.ResidentModel, error) {
	var rows []model.ResidentModel
	err := applyFilter(r.base(ctx, scope), scope, f).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListWithFamily: warga yang punya no_kk, urut created_at naik (urutan input dipertahankan untuk agregasi)
func (r *GormRepository) ListWithFamily(ctx context.Context, scope helperAuth.Scope) ([]model.ResidentModel, error) {
	var rows []model.ResidentModel
	err := r.base(ctx, scope).
		Where("no_kk IS NOT NULL AND no_kk <> ''").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormRepository) FindByFamily(ctx context.Context, scope helperAuth.Scope, noKK string) ([]model.ResidentModel, error) {
	var rows []model.ResidentModel
	err := r.base(ctx, scope).
		Where("no_kk = ?", noKK).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// UpdateFamilyPhoto: tulis foto_kk ke semua anggota no_kk yang sama kecuali excludeID
func (r *GormRepository) UpdateFamilyPhoto(ctx context.Context, noKK string, excludeID uuid.UUID, url string) (int64, error) {
	tx := r.DB.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("no_kk = ? AND id <> ?", noKK, excludeID).
		Update("foto_kk", url)
	return tx.RowsAffected, tx.Error
}

type groupCount struct {
	Key   string
	Total int64
}

func (r *GormRepository) countBy(ctx context.Context, scope helperAuth.Scope, column string) ([]groupCount, error) {
	var out []groupCount
	err := r.base(ctx, scope).
		Select("COALESCE(" + column + ", '') AS key, COUNT(*) AS total").
		Group(column).
		Scan(&out).Error
	return out, err
}

func (r *GormRepository) Stats(ctx context.Context, scope helperAuth.Scope) (Stats, error) {
	s := Stats{
		BySex:         map[string]int64{},
		ByAgama:       map[string]int64{},
		ByStatusKawin: map[string]int64{},
	}
	if err := r.base(ctx, scope).Count(&s.TotalWarga).Error; err != nil {
		return s, err
	}
	if err := r.base(ctx, scope).
		Where("no_kk IS NOT NULL AND no_kk <> ''").
		Distinct("no_kk").
		Count(&s.TotalKK).Error; err != nil {
		return s, err
	}

	targets := []struct {
		column string
		dst    map[string]int64
	}{
		{"jenis_kelamin", s.BySex},
		{"agama", s.ByAgama},
		{"status_kawin", s.ByStatusKawin},
	}
	for _, t := range targets {
		rows, err := r.countBy(ctx, scope, t.column)
		if err != nil {
			return s, err
		}
		for _, g := range rows {
			t.dst[g.Key] += g.Total
		}
	}
	return s, nil
}

func (r *GormRepository) Recent(ctx context.Context, scope helperAuth.Scope, n int) ([]model.ResidentModel, error) {
	var rows []model.ResidentModel
	err := r.base(ctx, scope).Order("created_at DESC").Limit(n).Find(&rows).Error
	return rows, err
}

// translate: unique violation (23505) → ErrDuplicateNIK
func translate(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return ErrDuplicateNIK
	}
	return err
}

// IsUniqueViolation dipakai service import saat commit batch
func IsUniqueViolation(err error) bool {
	return helper.IsUniqueViolation(err)
}
