package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImportLogModel: jejak setiap import massal yang berhasil di-commit
type ImportLogModel struct {
	ID         uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ImportedBy uuid.UUID                   `gorm:"column:imported_by;type:uuid;not null;index" json:"imported_by"`
	RowCount   int                         `gorm:"column:row_count;not null" json:"row_count"`
	NIKs       datatypes.JSONSlice[string] `gorm:"column:niks;type:jsonb" json:"niks"`
	RT         *string                     `gorm:"column:rt;size:3" json:"rt"`
	RW         *string                     `gorm:"column:rw;size:3" json:"rw"`
	CreatedAt  time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ImportLogModel) TableName() string {
	return "warga_import_logs"
}
