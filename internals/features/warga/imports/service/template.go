package service

import (
	"io"

	"github.com/pesafrisma19/wargakemang/internals/helpers/spreadsheet"
)

const (
	TemplateSheetName = "Template"
	TemplateFilename  = "template_import_warga.xlsx"
)

// TemplateColumns: urutan kolom header template (key dibaca lowercase saat import)
var TemplateColumns = []string{
	"nik", "nama", "tempat_lahir", "tanggal_lahir", "jenis_kelamin", "alamat",
	"golongan_darah", "rt", "rw", "desa", "kecamatan", "agama", "status_kawin",
	"pekerjaan", "kewarganegaraan", "no_kk", "no_wa",
}

// templateExample: satu baris contoh, semua teks supaya NIK/RT tidak berubah jadi angka
var templateExample = []any{
	"3214123456789012", "JOHN DOE", "CIANJUR", "1990-01-15", "L",
	"KP. CONTOH RT 001/001", "O", "001", "001", "KEMANG", "BOJONGPICUNG",
	"ISLAM", "KAWIN", "WIRASWASTA", "WNI", "3214123456789000", "08123456789",
}

func WriteTemplate(w io.Writer) error {
	return spreadsheet.WriteSheet(w, spreadsheet.Sheet{
		Name:    TemplateSheetName,
		Headers: TemplateColumns,
		Rows:    [][]any{templateExample},
		ColWidths: map[string]float64{
			"A": 20, "B": 22, "F": 26, "P": 20, "Q": 16,
		},
	})
}
