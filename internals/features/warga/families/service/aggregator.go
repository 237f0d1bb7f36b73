package service

import (
	"sort"
	"strings"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
)

// UnknownRoleRank: urutan untuk hubungan keluarga yang tidak dikenal
const UnknownRoleRank = 99

// RoleRanks: urutan tampil anggota per hubungan keluarga (kecil = atas)
type RoleRanks map[model.FamilyRole]int

func DefaultRoleRanks() RoleRanks {
	return RoleRanks{
		model.RoleKepalaKeluarga: 1,
		model.RoleIstri:          2,
		model.RoleAnak:           3,
		model.RoleOrangTua:       4,
		model.RoleMertua:         5,
		model.RoleMenantu:        6,
		model.RoleCucu:           7,
		model.RoleFamiliLain:     8,
	}
}

func (r RoleRanks) Rank(role string) int {
	if n, ok := r[model.FamilyRole(role)]; ok {
		return n
	}
	return UnknownRoleRank
}

// Family: satu KK, dihitung ulang setiap dibaca
type Family struct {
	NoKK           string                `json:"no_kk"`
	KepalaKeluarga *model.ResidentModel  `json:"kepala_keluarga"`
	Anggota        []model.ResidentModel `json:"anggota"`
	JumlahAnggota  int                   `json:"jumlah_anggota"`
}

type Aggregator struct {
	Ranks RoleRanks
}

func NewAggregator() Aggregator {
	return Aggregator{Ranks: DefaultRoleRanks()}
}

// Group mengelompokkan warga per no_kk. Warga tanpa no_kk dibuang.
// Urutan keluarga mengikuti kemunculan pertama no_kk di input, anggota
// diurutkan stabil berdasarkan rank hubungan keluarga.
func (a Aggregator) Group(residents []model.ResidentModel) []Family {
	ranks := a.Ranks
	if ranks == nil {
		ranks = DefaultRoleRanks()
	}

	index := map[string]int{}
	var out []Family
	for _, r := range residents {
		key := r.FamilyNo()
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Family{NoKK: key})
		}
		out[i].Anggota = append(out[i].Anggota, r)
	}

	for i := range out {
		members := out[i].Anggota
		sort.SliceStable(members, func(x, y int) bool {
			return ranks.Rank(members[x].Role()) < ranks.Rank(members[y].Role())
		})
		out[i].JumlahAnggota = len(members)
		for j := range members {
			if members[j].Role() == string(model.RoleKepalaKeluarga) {
				out[i].KepalaKeluarga = &members[j]
				break
			}
		}
	}
	return out
}

// Matches: no_kk mengandung q (case-sensitive), atau nama kepala / anggota mengandung q (case-insensitive).
func (f Family) Matches(q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(f.NoKK, q) {
		return true
	}
	lq := strings.ToLower(q)
	if f.KepalaKeluarga != nil && strings.Contains(strings.ToLower(f.KepalaKeluarga.Nama), lq) {
		return true
	}
	for _, m := range f.Anggota {
		if strings.Contains(strings.ToLower(m.Nama), lq) {
			return true
		}
	}
	return false
}

func Search(families []Family, q string) []Family {
	if q == "" {
		return families
	}
	out := make([]Family, 0, len(families))
	for _, f := range families {
		if f.Matches(q) {
			out = append(out, f)
		}
	}
	return out
}

// SortByNoKK: urutan deterministik untuk response HTTP
func SortByNoKK(families []Family) {
	sort.SliceStable(families, func(i, j int) bool {
		return families[i].NoKK < families[j].NoKK
	})
}
