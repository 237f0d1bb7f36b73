package configs

// RegionConfig berisi nilai wilayah default yang dipakai saat data warga
// tidak menyebutkan desa/kecamatan, dan konstanta kabupaten/provinsi
// yang selalu ditulis saat insert.
type RegionConfig struct {
	Desa      string
	Kecamatan string
	Kabupaten string
	Provinsi  string

	// Nilai default kolom lain saat import
	Agama           string
	StatusKawin     string
	Kewarganegaraan string
}

func DefaultRegion() RegionConfig {
	return RegionConfig{
		Desa:            "Kemang",
		Kecamatan:       "Bojongpicung",
		Kabupaten:       "CIANJUR",
		Provinsi:        "JAWA BARAT",
		Agama:           "ISLAM",
		StatusKawin:     "BELUM KAWIN",
		Kewarganegaraan: "WNI",
	}
}

func RegionFromEnv() RegionConfig {
	d := DefaultRegion()
	return RegionConfig{
		Desa:            GetEnv("DEFAULT_DESA", d.Desa),
		Kecamatan:       GetEnv("DEFAULT_KECAMATAN", d.Kecamatan),
		Kabupaten:       GetEnv("DEFAULT_KABUPATEN", d.Kabupaten),
		Provinsi:        GetEnv("DEFAULT_PROVINSI", d.Provinsi),
		Agama:           d.Agama,
		StatusKawin:     d.StatusKawin,
		Kewarganegaraan: d.Kewarganegaraan,
	}
}

// ImageConfig: opsi kompresi foto KTP/KK sebelum upload
type ImageConfig struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func ImageFromEnv() ImageConfig {
	return ImageConfig{
		MaxW:    GetEnvInt("IMAGE_WEBP_MAX_W", 1280),
		MaxH:    GetEnvInt("IMAGE_WEBP_MAX_H", 1280),
		Quality: float32(GetEnvInt("IMAGE_WEBP_QUALITY", 75)),
	}
}
