package service

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/helpers/spreadsheet"
)

const exportSheetName = "Data Warga"

var exportHeaders = []string{
	"No", "NIK", "Nama", "Tempat Lahir", "Tanggal Lahir", "Jenis Kelamin",
	"Alamat", "Alamat Kampung", "RT", "RW", "Desa", "Kecamatan", "Kabupaten",
	"Provinsi", "Agama", "Status Kawin", "Pekerjaan", "Kewarganegaraan",
	"Golongan Darah", "No. KK", "No. WA",
}

func dash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func orEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ExportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("data_warga_%s.%s", now.Format("2006-01-02"), ext)
}

// WriteResidentsXLSX: satu baris per warga, kolom sama dengan tampilan daftar warga
func WriteResidentsXLSX(w io.Writer, rows []model.ResidentModel) error {
	data := make([][]any, 0, len(rows))
	for i, r := range rows {
		data = append(data, []any{
			i + 1,
			r.NIK,
			r.Nama,
			r.TempatLahir,
			r.TanggalLahir,
			model.SexLabel(r.JenisKelamin),
			r.Alamat,
			orEmpty(r.AlamatKampung),
			r.RT,
			r.RW,
			r.Desa,
			r.Kecamatan,
			r.Kabupaten,
			r.Provinsi,
			r.Agama,
			r.StatusKawin,
			r.Pekerjaan,
			r.Kewarganegaraan,
			dash(r.GolonganDarah),
			dash(r.NoKK),
			dash(r.NoWA),
		})
	}
	return spreadsheet.WriteSheet(w, spreadsheet.Sheet{
		Name:    exportSheetName,
		Headers: exportHeaders,
		Rows:    data,
		ColWidths: map[string]float64{
			"A": 5, "B": 20, "C": 28, "G": 36, "H": 24, "T": 20, "U": 16,
		},
	})
}

var pdfColumns = []struct {
	title string
	width float64
}{
	{"No", 10},
	{"NIK", 42},
	{"Nama", 70},
	{"JK", 12},
	{"RT/RW", 22},
	{"No. KK", 42},
	{"No. WA", 35},
}

// WriteResidentsPDF: tabel ringkas landscape A4
func WriteResidentsPDF(w io.Writer, rows []model.ResidentModel, now time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Data Warga Kemang", true)
	// page break manual supaya header tabel ikut diulang
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Data Warga Kemang", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Diekspor: "+now.Format("02-01-2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(16, 185, 129)
		pdf.SetTextColor(255, 255, 255)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageH := pdf.GetPageSize()
	for i, r := range rows {
		if pdf.GetY()+7 > pageH-15 {
			pdf.AddPage()
			header()
		}
		values := []string{
			fmt.Sprintf("%d", i+1),
			r.NIK,
			tr(r.Nama),
			r.JenisKelamin,
			r.RT + "/" + r.RW,
			dash(r.NoKK),
			dash(r.NoWA),
		}
		for j, c := range pdfColumns {
			align := "L"
			if j == 0 || j == 3 || j == 4 {
				align = "C"
			}
			pdf.CellFormat(c.width, 7, values[j], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
