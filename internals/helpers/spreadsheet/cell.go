package spreadsheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
)

// Cell: nilai satu sel hasil baca spreadsheet. Angka dan teks dibedakan
// karena tanggal bisa datang sebagai serial number Excel.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

func Empty() Cell             { return Cell{} }
func Text(s string) Cell      { return Cell{Kind: KindText, Text: s} }
func Number(v float64) Cell   { return Cell{Kind: KindNumber, Num: v} }
func (c Cell) IsNumber() bool { return c.Kind == KindNumber }

// String: angka ditulis tanpa eksponen dan tanpa ".0" (3214123456789012, bukan 3.2e+15).
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Truthy: teks kosong dan angka 0 dianggap tidak diisi.
func (c Cell) Truthy() bool {
	switch c.Kind {
	case KindText:
		return c.Text != ""
	case KindNumber:
		return c.Num != 0
	default:
		return false
	}
}

// Or mengembalikan String() kalau sel terisi, selain itu def.
func (c Cell) Or(def string) string {
	if c.Truthy() {
		return c.String()
	}
	return def
}

// excelEpochSerial: serial 25569 = 1970-01-01
const excelEpochSerial = 25569

// AsDate: serial Excel dikonversi ke YYYY-MM-DD (UTC), teks diparse longgar,
// teks yang tidak bisa diparse dikembalikan apa adanya.
func (c Cell) AsDate() string {
	switch c.Kind {
	case KindNumber:
		ms := (c.Num - excelEpochSerial) * 86400 * 1000
		return time.UnixMilli(int64(ms)).UTC().Format("2006-01-02")
	case KindText:
		t, err := dateparse.ParseIn(strings.TrimSpace(c.Text), time.UTC)
		if err != nil {
			return c.Text
		}
		return t.UTC().Format("2006-01-02")
	default:
		return ""
	}
}
