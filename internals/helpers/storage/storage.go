package storage

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Storage: tempat simpan foto KTP/KK.
// Upload mengembalikan URL publik; Delete menerima URL yang sama.
type Storage interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename: folder/YYYYMMDD-uuid-nama_aman
func GenerateUniqueFilename(folder, originalFilename string) string {
	return fmt.Sprintf("%s/%s-%s-%s",
		folder,
		time.Now().Format("20060102"),
		uuid.New().String(),
		sanitizeFilename(originalFilename),
	)
}
