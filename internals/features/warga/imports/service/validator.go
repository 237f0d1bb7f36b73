package service

import (
	"fmt"
	"strings"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	residentModel "github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/helpers/spreadsheet"
)

const nikLength = 16

// Validator memeriksa dan menormalkan baris import. Tidak menyentuh DB.
type Validator struct {
	Region configs.RegionConfig
}

func NewValidator(region configs.RegionConfig) Validator {
	return Validator{Region: region}
}

type Result struct {
	Valid  []ImportRow `json:"valid_rows"`
	Errors []string    `json:"errors"`
}

// Validate: setiap baris lolos atau menghasilkan tepat satu pesan error.
// Satu baris gagal tidak menghentikan baris lain.
func (v Validator) Validate(rows []spreadsheet.Row) Result {
	res := Result{Valid: []ImportRow{}, Errors: []string{}}
	for i, row := range rows {
		line := row.Line
		if line <= 0 {
			line = i + 2 // baris 1 = header
		}
		out, err := v.normalize(row)
		if err != "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Baris %d: %s", line, err))
			continue
		}
		res.Valid = append(res.Valid, out)
	}
	return res
}

// checkIdentity: urutan cek NIK kosong → nama kosong → panjang NIK.
// Panjang dihitung per karakter, bukan cek digit.
func checkIdentity(nik, nama string, nikPresent, namaPresent bool) string {
	if !nikPresent {
		return "NIK kosong"
	}
	if !namaPresent {
		return "Nama kosong"
	}
	if len([]rune(nik)) != nikLength {
		return "NIK harus 16 digit"
	}
	return ""
}

func (v Validator) normalize(row spreadsheet.Row) (ImportRow, string) {
	nik := row.Get("nik")
	nama := row.Get("nama")
	if msg := checkIdentity(nik.String(), nama.String(), nik.Truthy(), nama.Truthy()); msg != "" {
		return ImportRow{}, msg
	}

	out := ImportRow{
		NIK:             nik.String(),
		Nama:            strings.ToUpper(nama.String()),
		TempatLahir:     strings.ToUpper(row.Get("tempat_lahir").Or("")),
		JenisKelamin:    sexOf(row.Get("jenis_kelamin")),
		Alamat:          strings.ToUpper(row.Get("alamat").Or("")),
		GolonganDarah:   "-",
		RT:              padCode(row.Get("rt").Or("")),
		RW:              padCode(row.Get("rw").Or("")),
		Desa:            row.Get("desa").Or(v.Region.Desa),
		Kecamatan:       row.Get("kecamatan").Or(v.Region.Kecamatan),
		Agama:           strings.ToUpper(row.Get("agama").Or(v.Region.Agama)),
		StatusKawin:     strings.ToUpper(row.Get("status_kawin").Or(v.Region.StatusKawin)),
		Pekerjaan:       strings.ToUpper(row.Get("pekerjaan").Or("")),
		Kewarganegaraan: row.Get("kewarganegaraan").Or(v.Region.Kewarganegaraan),
		NoKK:            optional(row.Get("no_kk")),
		NoWA:            optional(row.Get("no_wa")),
	}
	if tgl := row.Get("tanggal_lahir"); tgl.Truthy() {
		out.TanggalLahir = tgl.AsDate()
	}
	if gol := row.Get("golongan_darah"); gol.Truthy() {
		out.GolonganDarah = strings.ToUpper(gol.String())
	}
	return out, ""
}

// sexOf: huruf pertama (uppercase) L → L, selain itu P. Kosong → L.
func sexOf(c spreadsheet.Cell) string {
	s := strings.ToUpper(c.Or(residentModel.SexMale))
	if strings.HasPrefix(s, residentModel.SexMale) {
		return residentModel.SexMale
	}
	return residentModel.SexFemale
}

// padCode: "1" → "001", "" → "000", lebih dari 3 karakter dibiarkan
func padCode(s string) string {
	if n := len(s); n < 3 {
		return strings.Repeat("0", 3-n) + s
	}
	return s
}

func optional(c spreadsheet.Cell) *string {
	if !c.Truthy() {
		return nil
	}
	s := c.String()
	return &s
}

// CheckRow: cek ulang baris yang dikirim balik client saat commit
func CheckRow(r ImportRow) string {
	return checkIdentity(r.NIK, r.Nama, r.NIK != "", r.Nama != "")
}
