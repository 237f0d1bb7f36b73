package dto

import (
	"strings"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
)

/* =======================================================
   REQUEST DTOs (JSON atau multipart form)
   ======================================================= */

type CreateResidentRequest struct {
	NIK              string  `json:"nik" form:"nik" validate:"required,len=16,numeric"`
	Nama             string  `json:"nama" form:"nama" validate:"required,max=150"`
	TempatLahir      string  `json:"tempat_lahir" form:"tempat_lahir" validate:"required,max=100"`
	TanggalLahir     string  `json:"tanggal_lahir" form:"tanggal_lahir" validate:"required"`
	JenisKelamin     string  `json:"jenis_kelamin" form:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	Alamat           string  `json:"alamat" form:"alamat" validate:"required"`
	AlamatKampung    *string `json:"alamat_kampung" form:"alamat_kampung"`
	GolonganDarah    *string `json:"golongan_darah" form:"golongan_darah" validate:"omitempty,oneof=A B AB O -"`
	RT               string  `json:"rt" form:"rt" validate:"omitempty,len=3,numeric"`
	RW               string  `json:"rw" form:"rw" validate:"omitempty,len=3,numeric"`
	Desa             string  `json:"desa" form:"desa"`
	Kecamatan        string  `json:"kecamatan" form:"kecamatan"`
	Agama            string  `json:"agama" form:"agama" validate:"required"`
	StatusKawin      string  `json:"status_kawin" form:"status_kawin" validate:"required"`
	Pekerjaan        string  `json:"pekerjaan" form:"pekerjaan" validate:"required"`
	Kewarganegaraan  string  `json:"kewarganegaraan" form:"kewarganegaraan"`
	NoKK             *string `json:"no_kk" form:"no_kk" validate:"omitempty,max=16,numeric"`
	NoWA             *string `json:"no_wa" form:"no_wa" validate:"omitempty,max=20"`
	HubunganKeluarga *string `json:"hubungan_keluarga" form:"hubungan_keluarga"`
	NamaAyah         *string `json:"nama_ayah" form:"nama_ayah"`
	NamaIbu          *string `json:"nama_ibu" form:"nama_ibu"`
	Pendidikan       *string `json:"pendidikan" form:"pendidikan"`
}

// Normalize: trim & isi default wilayah
func (r *CreateResidentRequest) Normalize(region configs.RegionConfig) {
	r.NIK = strings.TrimSpace(r.NIK)
	r.Nama = strings.TrimSpace(r.Nama)
	r.TempatLahir = strings.TrimSpace(r.TempatLahir)
	r.TanggalLahir = strings.TrimSpace(r.TanggalLahir)
	r.JenisKelamin = model.NormalizeSex(r.JenisKelamin)
	r.Alamat = strings.TrimSpace(r.Alamat)
	r.RT = strings.TrimSpace(r.RT)
	r.RW = strings.TrimSpace(r.RW)
	r.Desa = orDefault(r.Desa, region.Desa)
	r.Kecamatan = orDefault(r.Kecamatan, region.Kecamatan)
	r.Agama = strings.TrimSpace(r.Agama)
	r.StatusKawin = strings.TrimSpace(r.StatusKawin)
	r.Pekerjaan = strings.TrimSpace(r.Pekerjaan)
	r.Kewarganegaraan = orDefault(r.Kewarganegaraan, region.Kewarganegaraan)

	r.AlamatKampung = trimPtr(r.AlamatKampung)
	r.GolonganDarah = upperPtr(r.GolonganDarah)
	r.NoKK = trimPtr(r.NoKK)
	r.NoWA = trimPtr(r.NoWA)
	r.HubunganKeluarga = trimPtr(r.HubunganKeluarga)
	r.NamaAyah = trimPtr(r.NamaAyah)
	r.NamaIbu = trimPtr(r.NamaIbu)
	r.Pendidikan = trimPtr(r.Pendidikan)
}

// ToModel: kabupaten/provinsi selalu dari konfigurasi
func (r *CreateResidentRequest) ToModel(region configs.RegionConfig) *model.ResidentModel {
	return &model.ResidentModel{
		NIK:              r.NIK,
		Nama:             r.Nama,
		TempatLahir:      r.TempatLahir,
		TanggalLahir:     r.TanggalLahir,
		JenisKelamin:     r.JenisKelamin,
		Alamat:           r.Alamat,
		AlamatKampung:    r.AlamatKampung,
		GolonganDarah:    r.GolonganDarah,
		RT:               r.RT,
		RW:               r.RW,
		Desa:             r.Desa,
		Kecamatan:        r.Kecamatan,
		Kabupaten:        region.Kabupaten,
		Provinsi:         region.Provinsi,
		Agama:            r.Agama,
		StatusKawin:      r.StatusKawin,
		Pekerjaan:        r.Pekerjaan,
		Kewarganegaraan:  r.Kewarganegaraan,
		NoKK:             r.NoKK,
		NoWA:             r.NoWA,
		HubunganKeluarga: r.HubunganKeluarga,
		NamaAyah:         r.NamaAyah,
		NamaIbu:          r.NamaIbu,
		Pendidikan:       r.Pendidikan,
	}
}

// UpdateResidentRequest: partial update (pointer: bedakan omit vs kosong)
type UpdateResidentRequest struct {
	NIK              *string `json:"nik" form:"nik" validate:"omitempty,len=16,numeric"`
	Nama             *string `json:"nama" form:"nama" validate:"omitempty,min=1,max=150"`
	TempatLahir      *string `json:"tempat_lahir" form:"tempat_lahir"`
	TanggalLahir     *string `json:"tanggal_lahir" form:"tanggal_lahir"`
	JenisKelamin     *string `json:"jenis_kelamin" form:"jenis_kelamin"`
	Alamat           *string `json:"alamat" form:"alamat"`
	AlamatKampung    *string `json:"alamat_kampung" form:"alamat_kampung"`
	GolonganDarah    *string `json:"golongan_darah" form:"golongan_darah" validate:"omitempty,oneof=A B AB O -"`
	RT               *string `json:"rt" form:"rt" validate:"omitempty,len=3,numeric"`
	RW               *string `json:"rw" form:"rw" validate:"omitempty,len=3,numeric"`
	Desa             *string `json:"desa" form:"desa"`
	Kecamatan        *string `json:"kecamatan" form:"kecamatan"`
	Agama            *string `json:"agama" form:"agama"`
	StatusKawin      *string `json:"status_kawin" form:"status_kawin"`
	Pekerjaan        *string `json:"pekerjaan" form:"pekerjaan"`
	Kewarganegaraan  *string `json:"kewarganegaraan" form:"kewarganegaraan"`
	NoKK             *string `json:"no_kk" form:"no_kk" validate:"omitempty,max=16,numeric"`
	NoWA             *string `json:"no_wa" form:"no_wa" validate:"omitempty,max=20"`
	HubunganKeluarga *string `json:"hubungan_keluarga" form:"hubungan_keluarga"`
	NamaAyah         *string `json:"nama_ayah" form:"nama_ayah"`
	NamaIbu          *string `json:"nama_ibu" form:"nama_ibu"`
	Pendidikan       *string `json:"pendidikan" form:"pendidikan"`
}

func (r *UpdateResidentRequest) Normalize() {
	for _, p := range []**string{
		&r.NIK, &r.Nama, &r.TempatLahir, &r.TanggalLahir, &r.Alamat, &r.AlamatKampung,
		&r.RT, &r.RW, &r.Desa, &r.Kecamatan, &r.Agama, &r.StatusKawin, &r.Pekerjaan,
		&r.Kewarganegaraan, &r.NoKK, &r.NoWA, &r.HubunganKeluarga, &r.NamaAyah,
		&r.NamaIbu, &r.Pendidikan, &r.GolonganDarah,
	} {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	if r.GolonganDarah != nil {
		v := strings.ToUpper(*r.GolonganDarah)
		r.GolonganDarah = &v
	}
	if r.JenisKelamin != nil {
		v := model.NormalizeSex(*r.JenisKelamin)
		r.JenisKelamin = &v
	}
}

// ApplyToModel: hanya field yang dikirim. String kosong pada kolom nullable → NULL.
func (r *UpdateResidentRequest) ApplyToModel(m *model.ResidentModel) {
	setStr(&m.NIK, r.NIK)
	setStr(&m.Nama, r.Nama)
	setStr(&m.TempatLahir, r.TempatLahir)
	setStr(&m.TanggalLahir, r.TanggalLahir)
	setStr(&m.JenisKelamin, r.JenisKelamin)
	setStr(&m.Alamat, r.Alamat)
	setStr(&m.RT, r.RT)
	setStr(&m.RW, r.RW)
	setStr(&m.Desa, r.Desa)
	setStr(&m.Kecamatan, r.Kecamatan)
	setStr(&m.Agama, r.Agama)
	setStr(&m.StatusKawin, r.StatusKawin)
	setStr(&m.Pekerjaan, r.Pekerjaan)
	setStr(&m.Kewarganegaraan, r.Kewarganegaraan)

	setNullable(&m.AlamatKampung, r.AlamatKampung)
	setNullable(&m.GolonganDarah, r.GolonganDarah)
	setNullable(&m.NoKK, r.NoKK)
	setNullable(&m.NoWA, r.NoWA)
	setNullable(&m.HubunganKeluarga, r.HubunganKeluarga)
	setNullable(&m.NamaAyah, r.NamaAyah)
	setNullable(&m.NamaIbu, r.NamaIbu)
	setNullable(&m.Pendidikan, r.Pendidikan)
}

/* =======================================================
   helpers
   ======================================================= */

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

// trimPtr: nil/kosong → nil
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func upperPtr(p *string) *string {
	p = trimPtr(p)
	if p == nil {
		return nil
	}
	v := strings.ToUpper(*p)
	return &v
}

func setStr(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func setNullable(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	val := *v
	*dst = &val
}
