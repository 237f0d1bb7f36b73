package model

import "strings"

func trim(s string) string { return strings.TrimSpace(s) }

/* ===============================
   Hubungan keluarga
=================================*/

type FamilyRole string

const (
	RoleKepalaKeluarga FamilyRole = "Kepala Keluarga"
	RoleIstri          FamilyRole = "Istri"
	RoleAnak           FamilyRole = "Anak"
	RoleOrangTua       FamilyRole = "Orang Tua"
	RoleMertua         FamilyRole = "Mertua"
	RoleMenantu        FamilyRole = "Menantu"
	RoleCucu           FamilyRole = "Cucu"
	RoleFamiliLain     FamilyRole = "Famili Lain"
)

var FamilyRoles = []FamilyRole{
	RoleKepalaKeluarga, RoleIstri, RoleAnak, RoleOrangTua,
	RoleMertua, RoleMenantu, RoleCucu, RoleFamiliLain,
}

/* ===============================
   Jenis kelamin
=================================*/

const (
	SexMale   = "L"
	SexFemale = "P"
)

// NormalizeSex: huruf pertama L → L, selain itu P. Kosong → L.
func NormalizeSex(v string) string {
	v = strings.ToUpper(trim(v))
	if v == "" || strings.HasPrefix(v, SexMale) {
		return SexMale
	}
	return SexFemale
}

func SexLabel(v string) string {
	if v == SexMale {
		return "Laki-laki"
	}
	return "Perempuan"
}

/* ===============================
   Agama & status kawin (tertutup, tapi longgar)
=================================*/

const Other = "LAINNYA"

var Religions = []string{"ISLAM", "KRISTEN", "KATOLIK", "HINDU", "BUDDHA", "KONGHUCU"}

var MaritalStatuses = []string{"BELUM KAWIN", "KAWIN", "CERAI HIDUP", "CERAI MATI"}

var BloodTypes = []string{"A", "B", "AB", "O", "-"}

// Bucket: nilai dikenal (case-insensitive) → bentuk baku uppercase, selain itu LAINNYA.
func Bucket(v string, known []string) string {
	u := strings.ToUpper(trim(v))
	for _, k := range known {
		if u == k {
			return k
		}
	}
	return Other
}

func IsKnown(v string, known []string) bool {
	return Bucket(v, known) != Other
}
