package dbtime

import (
	"sync"
	"time"

	"github.com/pesafrisma19/wargakemang/internals/configs"
)

const defaultTimezone = "Asia/Jakarta"

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location: zona waktu tampilan (APP_TIMEZONE, default Asia/Jakarta).
// Fallback terakhir: time.UTC
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(configs.GetEnv("APP_TIMEZONE", defaultTimezone))
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// Now: waktu sekarang di zona lokal desa (dipakai nama file & tanggal ekspor)
func Now() time.Time {
	return time.Now().In(Location())
}
