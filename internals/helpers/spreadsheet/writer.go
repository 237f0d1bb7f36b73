package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet: data siap tulis. Rows berisi nilai apa saja yang diterima SetCellValue.
type Sheet struct {
	Name      string
	Headers   []string
	Rows      [][]any
	ColWidths map[string]float64 // "A" -> 6
}

// WriteSheet menulis satu sheet (header bold) ke w dalam format xlsx.
func WriteSheet(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(s.Name)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if s.Name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to delete default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range s.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.Name, cell, h); err != nil {
			return fmt.Errorf("failed to set header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(s.Name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header %s: %w", cell, err)
		}
	}

	for r, row := range s.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.Name, cell, v); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	for col, width := range s.ColWidths {
		if err := f.SetColWidth(s.Name, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
