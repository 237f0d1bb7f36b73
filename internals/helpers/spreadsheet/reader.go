package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row: satu baris data. Line = nomor baris asli di sheet (header = baris 1).
type Row struct {
	Line  int
	Cells map[string]Cell
}

func (r Row) Get(key string) Cell {
	if r.Cells == nil {
		return Empty()
	}
	return r.Cells[key]
}

// ReadFirstSheet membaca sheet pertama. Baris 1 dianggap header
// (di-trim dan lowercase), baris kosong total dilewati.
func ReadFirstSheet(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheet")
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]Row, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		line := i + 1
		cells := make(map[string]Cell, len(headers))
		filled := false
		for col, value := range raw[i] {
			if col >= len(headers) || headers[col] == "" {
				continue
			}
			if value == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(col+1, line)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell name: %w", err)
			}
			typ, err := f.GetCellType(sheet, name)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell type %s: %w", name, err)
			}
			cells[headers[col]] = typedCell(typ, value)
			filled = true
		}
		if !filled {
			continue
		}
		out = append(out, Row{Line: line, Cells: cells})
	}
	return out, nil
}

func typedCell(typ excelize.CellType, value string) Cell {
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
		if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return Number(v)
		}
	}
	return Text(value)
}
