package constants

import (
	"path/filepath"
	"strings"
)

type FileKind int

const (
	FileImage       FileKind = 6
	FileSpreadsheet FileKind = 7
	FileUnknown     FileKind = 99
)

// DetectFileTypeFromExt: jenis file dari ekstensi (lowercase)
func DetectFileTypeFromExt(filename string) FileKind {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileImage
	case ".xlsx":
		return FileSpreadsheet
	default:
		return FileUnknown
	}
}
