package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wargakemang_http_requests_total",
		Help: "Jumlah request HTTP per route, method dan status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wargakemang_http_request_duration_seconds",
		Help:    "Durasi request HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// PhotoPropagationFailures: propagasi foto KK yang gagal (tidak pernah sampai ke user).
	PhotoPropagationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wargakemang_family_photo_propagation_failures_total",
		Help: "Propagasi foto KK ke anggota keluarga yang gagal.",
	})

	PhotoPropagatedRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wargakemang_family_photo_propagated_rows_total",
		Help: "Jumlah baris warga yang menerima foto KK hasil propagasi.",
	})

	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wargakemang_import_rows_total",
		Help: "Baris import per hasil (valid, invalid, inserted).",
	}, []string{"result"})

	StorageUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wargakemang_storage_uploads_total",
		Help: "Upload foto ke storage per hasil.",
	}, []string{"result"})
)
