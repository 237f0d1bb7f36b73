package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/pesafrisma19/wargakemang/internals/configs"
)

const WebPContentType = "image/webp"

// CompressToWebP: decode (jpeg/png/webp), perkecil kalau lebih besar dari MaxW/MaxH,
// lalu encode ulang ke WebP lossy.
func CompressToWebP(data []byte, opt configs.ImageConfig) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("file gambar kosong")
	}

	img, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	b := img.Bounds()
	if (opt.MaxW > 0 && b.Dx() > opt.MaxW) || (opt.MaxH > 0 && b.Dy() > opt.MaxH) {
		img = imaging.Fit(img, nonZero(opt.MaxW, b.Dx()), nonZero(opt.MaxH, b.Dy()), imaging.Lanczos)
	}

	q := opt.Quality
	if q <= 0 || q > 100 {
		q = 75
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}
	// image.Decode tidak kenal webp tanpa registrasi format
	if wimg, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return wimg, nil
	}
	return nil, err
}

func nonZero(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// WebPName mengganti ekstensi file jadi .webp
func WebPName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "foto"
	}
	return base + ".webp"
}
