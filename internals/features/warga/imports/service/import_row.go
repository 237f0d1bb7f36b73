package service

import (
	"github.com/pesafrisma19/wargakemang/internals/configs"
	residentModel "github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
)

// ImportRow: hasil normalisasi satu baris spreadsheet, siap di-insert.
// Tidak pernah disimpan apa adanya; dikirim balik ke client untuk preview.
type ImportRow struct {
	NIK             string  `json:"nik"`
	Nama            string  `json:"nama"`
	TempatLahir     string  `json:"tempat_lahir"`
	TanggalLahir    string  `json:"tanggal_lahir"`
	JenisKelamin    string  `json:"jenis_kelamin"`
	Alamat          string  `json:"alamat"`
	GolonganDarah   string  `json:"golongan_darah"`
	RT              string  `json:"rt"`
	RW              string  `json:"rw"`
	Desa            string  `json:"desa"`
	Kecamatan       string  `json:"kecamatan"`
	Agama           string  `json:"agama"`
	StatusKawin     string  `json:"status_kawin"`
	Pekerjaan       string  `json:"pekerjaan"`
	Kewarganegaraan string  `json:"kewarganegaraan"`
	NoKK            *string `json:"no_kk"`
	NoWA            *string `json:"no_wa"`
}

// ToResident: kabupaten/provinsi diisi saat insert, desa/kecamatan kosong → default
func (r ImportRow) ToResident(region configs.RegionConfig) residentModel.ResidentModel {
	desa := r.Desa
	if desa == "" {
		desa = region.Desa
	}
	kecamatan := r.Kecamatan
	if kecamatan == "" {
		kecamatan = region.Kecamatan
	}
	gol := r.GolonganDarah
	return residentModel.ResidentModel{
		NIK:             r.NIK,
		Nama:            r.Nama,
		TempatLahir:     r.TempatLahir,
		TanggalLahir:    r.TanggalLahir,
		JenisKelamin:    r.JenisKelamin,
		Alamat:          r.Alamat,
		GolonganDarah:   &gol,
		RT:              r.RT,
		RW:              r.RW,
		Desa:            desa,
		Kecamatan:       kecamatan,
		Kabupaten:       region.Kabupaten,
		Provinsi:        region.Provinsi,
		Agama:           r.Agama,
		StatusKawin:     r.StatusKawin,
		Pekerjaan:       r.Pekerjaan,
		Kewarganegaraan: r.Kewarganegaraan,
		NoKK:            r.NoKK,
		NoWA:            r.NoWA,
	}
}
