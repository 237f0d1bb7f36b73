package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/dto"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
	"github.com/pesafrisma19/wargakemang/internals/helpers/storage"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 20), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newService(repo *fakeRepo, st *storage.MemoryStorage) *ResidentService {
	return NewResidentService(repo, st, configs.DefaultRegion(), configs.ImageConfig{MaxW: 64, MaxH: 64, Quality: 70})
}

func createReq(nik string) *dto.CreateResidentRequest {
	return &dto.CreateResidentRequest{
		NIK:          nik,
		Nama:         "BUDI",
		TempatLahir:  "CIANJUR",
		TanggalLahir: "1990-01-15",
		JenisKelamin: "L",
		Alamat:       "KP. KEMANG",
		RT:           "001",
		RW:           "002",
		Agama:        "ISLAM",
		StatusKawin:  "KAWIN",
		Pekerjaan:    "PETANI",
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "bukan *fiber.Error: %v", err)
	return fe.Code
}

func TestCreate_DuplicateNIKNamesOwner(t *testing.T) {
	repo := newFakeRepo(model.ResidentModel{NIK: "3214000000000001", Nama: "SITI AMINAH", RT: "001", RW: "002"})
	svc := newService(repo, storage.NewMemoryStorage())

	_, err := svc.Create(context.Background(), helperAuth.AdminScope(), createReq("3214000000000001"), Uploads{})

	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, statusOf(t, err))
	assert.Contains(t, err.Error(), "SITI AMINAH")
}

func TestCreate_RTScopeForcesArea(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, storage.NewMemoryStorage())

	req := createReq("3214000000000002")
	req.RT, req.RW = "009", "009"
	m, err := svc.Create(context.Background(), helperAuth.RTScope("003", "004"), req, Uploads{})

	require.NoError(t, err)
	assert.Equal(t, "003", m.RT)
	assert.Equal(t, "004", m.RW)
	assert.Equal(t, configs.DefaultRegion().Kabupaten, m.Kabupaten)
	assert.Equal(t, configs.DefaultRegion().Desa, m.Desa)
}

func TestCreate_AdminWithoutAreaRejected(t *testing.T) {
	svc := newService(newFakeRepo(), storage.NewMemoryStorage())
	req := createReq("3214000000000003")
	req.RT = ""

	_, err := svc.Create(context.Background(), helperAuth.AdminScope(), req, Uploads{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))
}

func TestCreate_UploadsAndPropagatesKK(t *testing.T) {
	sibling := model.ResidentModel{NIK: "3214000000000010", Nama: "ISTRI", NoKK: strp("3214000000009999"), RT: "001", RW: "002"}
	repo := newFakeRepo(sibling)
	st := storage.NewMemoryStorage()
	svc := newService(repo, st)

	req := createReq("3214000000000011")
	req.NoKK = strp("3214000000009999")
	m, err := svc.Create(context.Background(), helperAuth.AdminScope(), req, Uploads{
		KTP: &PhotoUpload{Filename: "ktp.png", Data: pngBytes(t)},
		KK:  &PhotoUpload{Filename: "kk.png", Data: pngBytes(t)},
	})

	require.NoError(t, err)
	require.NotNil(t, m.FotoKTP)
	require.NotNil(t, m.FotoKK)
	assert.Len(t, st.Objects, 2)
	assert.Contains(t, *m.FotoKK, ".webp")

	require.Len(t, repo.photoCalls, 1)
	assert.Equal(t, *m.FotoKK, repo.photoCalls[0].URL)
	for _, r := range repo.rows {
		if r.NIK == sibling.NIK {
			require.NotNil(t, r.FotoKK)
			assert.Equal(t, *m.FotoKK, *r.FotoKK)
		}
	}
}

func TestCreate_SaveFailureRemovesUploads(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("connection reset")
	st := storage.NewMemoryStorage()
	svc := newService(repo, st)

	_, err := svc.Create(context.Background(), helperAuth.AdminScope(), createReq("3214000000000020"), Uploads{
		KK: &PhotoUpload{Filename: "kk.png", Data: pngBytes(t)},
	})

	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, statusOf(t, err))
	assert.Len(t, st.Deleted, 1)
	assert.Empty(t, st.Objects)
	assert.Empty(t, repo.photoCalls)
}

func TestCreate_InvalidPhotoIsBadRequest(t *testing.T) {
	st := storage.NewMemoryStorage()
	svc := newService(newFakeRepo(), st)

	_, err := svc.Create(context.Background(), helperAuth.AdminScope(), createReq("3214000000000021"), Uploads{
		KTP: &PhotoUpload{Filename: "ktp.png", Data: []byte("bukan gambar")},
	})

	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))
	assert.Empty(t, st.Objects)
}

func TestUpdate_RTCannotMoveResidentOut(t *testing.T) {
	own := model.ResidentModel{ID: uuid.New(), NIK: "3214000000000030", Nama: "A", RT: "001", RW: "002"}
	svc := newService(newFakeRepo(own), storage.NewMemoryStorage())

	_, err := svc.Update(context.Background(), helperAuth.RTScope("001", "002"), own.ID,
		&dto.UpdateResidentRequest{RT: strp("005")}, Uploads{})

	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, statusOf(t, err))
}

func TestUpdate_OutOfScopeIsNotFound(t *testing.T) {
	other := model.ResidentModel{ID: uuid.New(), NIK: "3214000000000031", Nama: "B", RT: "007", RW: "007"}
	svc := newService(newFakeRepo(other), storage.NewMemoryStorage())

	_, err := svc.Update(context.Background(), helperAuth.RTScope("001", "002"), other.ID,
		&dto.UpdateResidentRequest{Nama: strp("C")}, Uploads{})

	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

func TestUpdate_NIKTakenByAnother(t *testing.T) {
	a := model.ResidentModel{ID: uuid.New(), NIK: "3214000000000040", Nama: "A", RT: "001", RW: "002"}
	b := model.ResidentModel{ID: uuid.New(), NIK: "3214000000000041", Nama: "PEMILIK", RT: "001", RW: "002"}
	svc := newService(newFakeRepo(a, b), storage.NewMemoryStorage())

	_, err := svc.Update(context.Background(), helperAuth.AdminScope(), a.ID,
		&dto.UpdateResidentRequest{NIK: strp(b.NIK)}, Uploads{})

	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, statusOf(t, err))
	assert.Contains(t, err.Error(), "PEMILIK")
}

func TestUpdate_PartialFieldsAndNullClearing(t *testing.T) {
	a := model.ResidentModel{
		ID: uuid.New(), NIK: "3214000000000050", Nama: "LAMA", RT: "001", RW: "002",
		GolonganDarah: strp("A"), NoKK: strp("K1"),
	}
	repo := newFakeRepo(a)
	svc := newService(repo, storage.NewMemoryStorage())

	m, err := svc.Update(context.Background(), helperAuth.AdminScope(), a.ID,
		&dto.UpdateResidentRequest{Nama: strp("  BARU "), GolonganDarah: strp("")}, Uploads{})

	require.NoError(t, err)
	assert.Equal(t, "BARU", m.Nama)
	assert.Nil(t, m.GolonganDarah)
	assert.Equal(t, "K1", *m.NoKK)
	assert.Equal(t, "001", repo.rows[a.ID].RT)
	assert.Empty(t, repo.photoCalls)
}

func TestDelete_ScopeAndMissing(t *testing.T) {
	a := model.ResidentModel{ID: uuid.New(), NIK: "3214000000000060", Nama: "A", RT: "001", RW: "002"}
	repo := newFakeRepo(a)
	svc := newService(repo, storage.NewMemoryStorage())

	err := svc.Delete(context.Background(), helperAuth.RTScope("009", "009"), a.ID)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	require.NoError(t, svc.Delete(context.Background(), helperAuth.RTScope("001", "002"), a.ID))
	assert.NotContains(t, repo.rows, a.ID)

	err = svc.Delete(context.Background(), helperAuth.AdminScope(), uuid.New())
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}
