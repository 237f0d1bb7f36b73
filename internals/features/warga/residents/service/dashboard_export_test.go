package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
	"github.com/pesafrisma19/wargakemang/internals/helpers/spreadsheet"
)

type statsRepo struct {
	repository.Repository
	stats  repository.Stats
	recent []model.ResidentModel
}

func (s statsRepo) Stats(context.Context, helperAuth.Scope) (repository.Stats, error) {
	return s.stats, nil
}

func (s statsRepo) Recent(context.Context, helperAuth.Scope, int) ([]model.ResidentModel, error) {
	return s.recent, nil
}

func TestBucketize(t *testing.T) {
	got := bucketize(map[string]int64{
		"Islam":       3,
		"islam ":      1,
		"":            2,
		"Kepercayaan": 1,
		"KATOLIK":     5,
	}, model.Religions)

	assert.Equal(t, int64(4), got["ISLAM"])
	assert.Equal(t, int64(5), got["KATOLIK"])
	assert.Equal(t, int64(3), got[model.Other])
	assert.Equal(t, int64(0), got["HINDU"])
	assert.Len(t, got, len(model.Religions)+1)
}

func TestDashboard(t *testing.T) {
	repo := statsRepo{stats: repository.Stats{
		TotalWarga:    10,
		TotalKK:       3,
		BySex:         map[string]int64{"L": 6, "P": 3, "": 1},
		ByAgama:       map[string]int64{"ISLAM": 10},
		ByStatusKawin: map[string]int64{"Kawin": 4, "JANDA": 6},
	}}
	svc := &ResidentService{Repo: repo}

	d, err := svc.Dashboard(context.Background(), helperAuth.AdminScope())
	require.NoError(t, err)
	assert.Equal(t, int64(10), d.TotalWarga)
	assert.Equal(t, int64(3), d.TotalKK)
	assert.Equal(t, int64(6), d.TotalLakiLaki)
	assert.Equal(t, int64(3), d.TotalPerempuan)
	assert.Equal(t, int64(4), d.StatusKawin["KAWIN"])
	assert.Equal(t, int64(6), d.StatusKawin[model.Other])
	assert.Equal(t, int64(0), d.Agama["KRISTEN"])
	assert.NotNil(t, d.WargaTerbaru)
	assert.Empty(t, d.WargaTerbaru)
}

func exportRows() []model.ResidentModel {
	return []model.ResidentModel{
		{NIK: "3214000000000001", Nama: "AHMAD", JenisKelamin: "L", RT: "001", RW: "002", NoKK: strp("3214000000009999")},
		{NIK: "3214000000000002", Nama: "SITI", JenisKelamin: "P", RT: "001", RW: "002"},
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "data_warga_2026-03-09.xlsx", ExportFilename("xlsx", now))
	assert.Equal(t, "data_warga_2026-03-09.pdf", ExportFilename("pdf", now))
}

func TestWriteResidentsXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResidentsXLSX(&buf, exportRows()))

	rows, err := spreadsheet.ReadFirstSheet(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "3214000000000001", rows[0].Get("nik").String())
	assert.Equal(t, "Laki-laki", rows[0].Get("jenis kelamin").String())
	assert.Equal(t, "3214000000009999", rows[0].Get("no. kk").String())
	assert.Equal(t, "Perempuan", rows[1].Get("jenis kelamin").String())
	assert.Equal(t, "-", rows[1].Get("no. kk").String())
}

func TestWriteResidentsPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResidentsPDF(&buf, exportRows(), time.Now()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
