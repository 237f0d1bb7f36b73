package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/dto"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
	"github.com/pesafrisma19/wargakemang/internals/helpers/metrics"
	"github.com/pesafrisma19/wargakemang/internals/helpers/storage"
)

// PhotoUpload: file foto mentah dari multipart
type PhotoUpload struct {
	Filename string
	Data     []byte
}

type Uploads struct {
	KTP *PhotoUpload
	KK  *PhotoUpload
}

type ResidentService struct {
	Repo       repository.Repository
	Storage    storage.Storage
	Propagator FamilyPhotoPropagator
	Region     configs.RegionConfig
	Image      configs.ImageConfig
}

func NewResidentService(repo repository.Repository, st storage.Storage, region configs.RegionConfig, img configs.ImageConfig) *ResidentService {
	return &ResidentService{
		Repo:       repo,
		Storage:    st,
		Propagator: FamilyPhotoPropagator{Writer: repo},
		Region:     region,
		Image:      img,
	}
}

func saveFailed(status int, err error) error {
	return fiber.NewError(status, "Gagal menyimpan data: "+err.Error())
}

// ensureNIKFree: 409 dengan nama pemilik kalau NIK sudah dipakai warga lain
func (s *ResidentService) ensureNIKFree(ctx context.Context, nik string, excludeID *uuid.UUID) error {
	existing, err := s.Repo.FindByNIK(ctx, nik, excludeID)
	if err != nil {
		return saveFailed(fiber.StatusInternalServerError, err)
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusConflict, "NIK sudah terdaftar atas nama "+existing.Nama)
	}
	return nil
}

// uploadPhoto: kompres ke WebP lalu upload. Return URL publik.
func (s *ResidentService) uploadPhoto(ctx context.Context, folder string, up *PhotoUpload) (string, error) {
	data, err := storage.CompressToWebP(up.Data, s.Image)
	if err != nil {
		metrics.StorageUploads.WithLabelValues("invalid").Inc()
		return "", fiber.NewError(fiber.StatusBadRequest, "Foto tidak valid: "+err.Error())
	}
	path := storage.GenerateUniqueFilename(folder, storage.WebPName(up.Filename))
	url, err := s.Storage.Upload(ctx, path, storage.WebPContentType, data)
	if err != nil {
		metrics.StorageUploads.WithLabelValues("error").Inc()
		return "", saveFailed(fiber.StatusBadGateway, err)
	}
	metrics.StorageUploads.WithLabelValues("ok").Inc()
	return url, nil
}

// uploadAll mengembalikan URL per jenis + daftar URL untuk kompensasi
func (s *ResidentService) uploadAll(ctx context.Context, up Uploads) (ktpURL, kkURL *string, uploaded []string, err error) {
	if up.KTP != nil {
		u, err := s.uploadPhoto(ctx, "ktp", up.KTP)
		if err != nil {
			return nil, nil, uploaded, err
		}
		ktpURL = &u
		uploaded = append(uploaded, u)
	}
	if up.KK != nil {
		u, err := s.uploadPhoto(ctx, "kk", up.KK)
		if err != nil {
			return nil, nil, uploaded, err
		}
		kkURL = &u
		uploaded = append(uploaded, u)
	}
	return ktpURL, kkURL, uploaded, nil
}

// compensate: hapus objek yang terlanjur diupload kalau simpan record gagal
func (s *ResidentService) compensate(urls []string) {
	for _, u := range urls {
		// ctx request bisa sudah habis, pakai context baru
		if err := s.Storage.Delete(context.Background(), u); err != nil {
			log.Printf("[WARN] gagal hapus upload yatim %s: %v", u, err)
		}
	}
}

func (s *ResidentService) persistErr(ctx context.Context, nik string, excludeID *uuid.UUID, err error) error {
	if errors.Is(err, repository.ErrDuplicateNIK) {
		if ex, ferr := s.Repo.FindByNIK(ctx, nik, excludeID); ferr == nil && ex != nil {
			return fiber.NewError(fiber.StatusConflict, "NIK sudah terdaftar atas nama "+ex.Nama)
		}
		return fiber.NewError(fiber.StatusConflict, "NIK sudah terdaftar")
	}
	return saveFailed(fiber.StatusInternalServerError, err)
}

func (s *ResidentService) Create(ctx context.Context, scope helperAuth.Scope, req *dto.CreateResidentRequest, up Uploads) (*model.ResidentModel, error) {
	req.Normalize(s.Region)
	if !scope.IsAdmin() {
		req.RT, req.RW = scope.RT, scope.RW
	}
	if req.RT == "" || req.RW == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "RT dan RW wajib diisi")
	}

	if err := s.ensureNIKFree(ctx, req.NIK, nil); err != nil {
		return nil, err
	}

	ktpURL, kkURL, uploaded, err := s.uploadAll(ctx, up)
	if err != nil {
		s.compensate(uploaded)
		return nil, err
	}

	m := req.ToModel(s.Region)
	m.FotoKTP = ktpURL
	m.FotoKK = kkURL

	if err := s.Repo.Create(ctx, m); err != nil {
		s.compensate(uploaded)
		return nil, s.persistErr(ctx, m.NIK, nil, err)
	}

	s.Propagator.Propagate(ctx, m, kkURL != nil)
	log.Printf("[INFO] warga dibuat id=%s rt=%s rw=%s", m.ID, m.RT, m.RW)
	return m, nil
}

// getScoped: 404 juga untuk warga di luar scope (tidak bocorkan keberadaan)
func (s *ResidentService) getScoped(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.ResidentModel, error) {
	m, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Warga tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data warga")
	}
	if !scope.Contains(m.RT, m.RW) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Warga tidak ditemukan")
	}
	return m, nil
}

func (s *ResidentService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.ResidentModel, error) {
	return s.getScoped(ctx, scope, id)
}

func (s *ResidentService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req *dto.UpdateResidentRequest, up Uploads) (*model.ResidentModel, error) {
	m, err := s.getScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if !scope.IsAdmin() {
		if (req.RT != nil && *req.RT != "" && *req.RT != scope.RT) ||
			(req.RW != nil && *req.RW != "" && *req.RW != scope.RW) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Tidak boleh memindahkan warga ke luar RT/RW Anda")
		}
	}

	if req.NIK != nil && *req.NIK != "" && *req.NIK != m.NIK {
		if err := s.ensureNIKFree(ctx, *req.NIK, &m.ID); err != nil {
			return nil, err
		}
	}

	ktpURL, kkURL, uploaded, err := s.uploadAll(ctx, up)
	if err != nil {
		s.compensate(uploaded)
		return nil, err
	}

	req.ApplyToModel(m)
	if ktpURL != nil {
		m.FotoKTP = ktpURL
	}
	if kkURL != nil {
		m.FotoKK = kkURL
	}

	if err := s.Repo.Save(ctx, m); err != nil {
		s.compensate(uploaded)
		return nil, s.persistErr(ctx, m.NIK, &m.ID, err)
	}

	s.Propagator.Propagate(ctx, m, kkURL != nil)
	return m, nil
}

func (s *ResidentService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	if _, err := s.getScoped(ctx, scope, id); err != nil {
		return err
	}
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data: "+err.Error())
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Warga tidak ditemukan")
	}
	return nil
}

func (s *ResidentService) List(ctx context.Context, scope helperAuth.Scope, f repository.ListFilter, p helper.Params) ([]model.ResidentModel, helper.Meta, error) {
	rows, total, err := s.Repo.List(ctx, scope, f, p)
	if err != nil {
		return nil, helper.Meta{}, fmt.Errorf("list warga: %w", err)
	}
	return rows, helper.BuildMeta(total, p), nil
}

func (s *ResidentService) ListAll(ctx context.Context, scope helperAuth.Scope, f repository.ListFilter) ([]model.ResidentModel, error) {
	rows, err := s.Repo.ListAll(ctx, scope, f)
	if err != nil {
		return nil, fmt.Errorf("export warga: %w", err)
	}
	return rows, nil
}
