package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/helpers/metrics"
)

// PhotoWriter: bagian repository yang dibutuhkan propagasi foto KK
type PhotoWriter interface {
	UpdateFamilyPhoto(ctx context.Context, noKK string, excludeID uuid.UUID, url string) (int64, error)
}

// FamilyPhotoPropagator menyalin foto KK yang baru diupload ke semua
// anggota lain dengan no_kk sama. Tanpa lock: tulisan terakhir menang.
type FamilyPhotoPropagator struct {
	Writer PhotoWriter
}

// Propagate dipanggil setelah simpan utama sukses. Jalan hanya kalau
// record punya no_kk dan foto KK memang baru diupload di operasi ini.
// Error tidak pernah dikembalikan ke caller, cukup dicatat.
func (p FamilyPhotoPropagator) Propagate(ctx context.Context, saved *model.ResidentModel, freshUpload bool) int64 {
	if p.Writer == nil || saved == nil || !freshUpload {
		return 0
	}
	noKK := saved.FamilyNo()
	if noKK == "" || saved.FotoKK == nil || *saved.FotoKK == "" {
		return 0
	}

	n, err := p.Writer.UpdateFamilyPhoto(ctx, noKK, saved.ID, *saved.FotoKK)
	if err != nil {
		metrics.PhotoPropagationFailures.Inc()
		log.Printf("[WARN] propagasi foto KK gagal no_kk=%s warga=%s: %v", noKK, saved.ID, err)
		return 0
	}
	metrics.PhotoPropagatedRows.Add(float64(n))
	if n > 0 {
		log.Printf("[INFO] foto KK dipropagasi ke %d anggota no_kk=%s", n, noKK)
	}
	return n
}
