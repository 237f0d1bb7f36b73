package service

import (
	"context"
	"fmt"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

const recentLimit = 5

type Dashboard struct {
	TotalWarga     int64                 `json:"total_warga"`
	TotalKK        int64                 `json:"total_kk"`
	TotalLakiLaki  int64                 `json:"total_laki_laki"`
	TotalPerempuan int64                 `json:"total_perempuan"`
	Agama          map[string]int64      `json:"agama"`
	StatusKawin    map[string]int64      `json:"status_kawin"`
	WargaTerbaru   []model.ResidentModel `json:"warga_terbaru"`
}

// bucketize: nilai di luar daftar baku digabung ke LAINNYA
func bucketize(raw map[string]int64, known []string) map[string]int64 {
	out := make(map[string]int64, len(known)+1)
	for _, k := range known {
		out[k] = 0
	}
	for k, v := range raw {
		out[model.Bucket(k, known)] += v
	}
	return out
}

func (s *ResidentService) Dashboard(ctx context.Context, scope helperAuth.Scope) (*Dashboard, error) {
	st, err := s.Repo.Stats(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("statistik warga: %w", err)
	}
	recent, err := s.Repo.Recent(ctx, scope, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("warga terbaru: %w", err)
	}

	d := &Dashboard{
		TotalWarga:     st.TotalWarga,
		TotalKK:        st.TotalKK,
		TotalLakiLaki:  st.BySex[model.SexMale],
		TotalPerempuan: st.BySex[model.SexFemale],
		Agama:          bucketize(st.ByAgama, model.Religions),
		StatusKawin:    bucketize(st.ByStatusKawin, model.MaritalStatuses),
		WargaTerbaru:   recent,
	}
	if d.WargaTerbaru == nil {
		d.WargaTerbaru = []model.ResidentModel{}
	}
	return d, nil
}
