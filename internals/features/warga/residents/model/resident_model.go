package model

import (
	"time"

	"github.com/google/uuid"
)

// ResidentModel merepresentasikan tabel warga
type ResidentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NIK              string    `gorm:"column:nik;size:16;uniqueIndex:uq_warga_nik;not null" json:"nik"`
	Nama             string    `gorm:"column:nama;not null" json:"nama"`
	TempatLahir      string    `gorm:"column:tempat_lahir" json:"tempat_lahir"`
	TanggalLahir     string    `gorm:"column:tanggal_lahir" json:"tanggal_lahir"`
	JenisKelamin     string    `gorm:"column:jenis_kelamin;size:1;not null;default:'L'" json:"jenis_kelamin"`
	Alamat           string    `gorm:"column:alamat" json:"alamat"`
	AlamatKampung    *string   `gorm:"column:alamat_kampung" json:"alamat_kampung"`
	GolonganDarah    *string   `gorm:"column:golongan_darah;size:2" json:"golongan_darah"`
	RT               string    `gorm:"column:rt;size:3;index:idx_warga_rt_rw,priority:1" json:"rt"`
	RW               string    `gorm:"column:rw;size:3;index:idx_warga_rt_rw,priority:2" json:"rw"`
	Desa             string    `gorm:"column:desa" json:"desa"`
	Kecamatan        string    `gorm:"column:kecamatan" json:"kecamatan"`
	Kabupaten        string    `gorm:"column:kabupaten" json:"kabupaten"`
	Provinsi         string    `gorm:"column:provinsi" json:"provinsi"`
	Agama            string    `gorm:"column:agama" json:"agama"`
	StatusKawin      string    `gorm:"column:status_kawin" json:"status_kawin"`
	Pekerjaan        string    `gorm:"column:pekerjaan" json:"pekerjaan"`
	Kewarganegaraan  string    `gorm:"column:kewarganegaraan;default:'WNI'" json:"kewarganegaraan"`
	NoKK             *string   `gorm:"column:no_kk;index:idx_warga_no_kk" json:"no_kk"`
	NoWA             *string   `gorm:"column:no_wa" json:"no_wa"`
	HubunganKeluarga *string   `gorm:"column:hubungan_keluarga" json:"hubungan_keluarga"`
	FotoKTP          *string   `gorm:"column:foto_ktp" json:"foto_ktp"`
	FotoKK           *string   `gorm:"column:foto_kk" json:"foto_kk"`
	NamaAyah         *string   `gorm:"column:nama_ayah" json:"nama_ayah"`
	NamaIbu          *string   `gorm:"column:nama_ibu" json:"nama_ibu"`
	Pendidikan       *string   `gorm:"column:pendidikan" json:"pendidikan"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ResidentModel) TableName() string {
	return "warga"
}

// FamilyNo: no_kk apa adanya (tanpa trim), "" kalau null
func (r ResidentModel) FamilyNo() string {
	if r.NoKK == nil {
		return ""
	}
	return *r.NoKK
}

// Role: hubungan keluarga, "" kalau null
func (r ResidentModel) Role() string {
	if r.HubunganKeluarga == nil {
		return ""
	}
	return *r.HubunganKeluarga
}
