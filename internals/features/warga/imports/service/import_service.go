package service

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/imports/model"
	residentModel "github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
	"github.com/pesafrisma19/wargakemang/internals/helpers/metrics"
)

const insertBatchSize = 200

type ImportService struct {
	DB        *gorm.DB
	Residents repository.Repository
	Region    configs.RegionConfig
}

func NewImportService(db *gorm.DB, residents repository.Repository, region configs.RegionConfig) *ImportService {
	return &ImportService{DB: db, Residents: residents, Region: region}
}

// checkBatch: cek ulang identitas, scope RT, dan duplikat di dalam batch
func (s *ImportService) checkBatch(scope helperAuth.Scope, rows []ImportRow) error {
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada data untuk diimport")
	}
	seen := make(map[string]int, len(rows))
	for i, r := range rows {
		if msg := CheckRow(r); msg != "" {
			return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("Data ke-%d: %s", i+1, msg))
		}
		if !scope.Contains(r.RT, r.RW) {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("Data ke-%d (NIK %s) berada di RT %s/RW %s, di luar wilayah Anda", i+1, r.NIK, r.RT, r.RW))
		}
		if prev, dup := seen[r.NIK]; dup {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("NIK %s muncul lebih dari sekali (data ke-%d dan ke-%d)", r.NIK, prev, i+1))
		}
		seen[r.NIK] = i + 1
	}
	return nil
}

// Commit menyimpan semua baris dalam satu transaksi plus satu baris log.
func (s *ImportService) Commit(ctx context.Context, scope helperAuth.Scope, rows []ImportRow) (*model.ImportLogModel, error) {
	if err := s.checkBatch(scope, rows); err != nil {
		return nil, err
	}

	niks := make([]string, len(rows))
	for i, r := range rows {
		niks[i] = r.NIK
	}
	existing, err := s.Residents.FindByNIKs(ctx, niks)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengimpor data: "+err.Error())
	}
	if len(existing) > 0 {
		ex := existing[0]
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("NIK %s sudah terdaftar atas nama %s", ex.NIK, ex.Nama))
	}

	residents := make([]residentModel.ResidentModel, len(rows))
	for i, r := range rows {
		residents[i] = r.ToResident(s.Region)
	}

	entry := &model.ImportLogModel{
		ImportedBy: scope.UserID,
		RowCount:   len(rows),
		NIKs:       niks,
	}
	if !scope.IsAdmin() {
		entry.RT, entry.RW = &scope.RT, &scope.RW
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&residents, insertBatchSize).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Gagal mengimpor data: ada NIK yang sudah terdaftar")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengimpor data: "+err.Error())
	}

	metrics.ImportRows.WithLabelValues("inserted").Add(float64(len(rows)))
	log.Printf("[INFO] import %d warga oleh %s", len(rows), scope.UserID)
	return entry, nil
}

func (s *ImportService) ListLogs(ctx context.Context, p helper.Params) ([]model.ImportLogModel, helper.Meta, error) {
	q := s.DB.WithContext(ctx).Model(&model.ImportLogModel{})

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, helper.Meta{}, err
	}
	var rows []model.ImportLogModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return nil, helper.Meta{}, err
	}
	return rows, helper.BuildMeta(total, p), nil
}
