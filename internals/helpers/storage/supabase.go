package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/pesafrisma19/wargakemang/internals/configs"
)

var ErrNotConfigured = errors.New("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_ROLE_KEY belum diset")

type SupabaseStorage struct {
	baseURL string
	key     string
	bucket  string
	http    *resty.Client
	cb      *gobreaker.CircuitBreaker
}

func NewSupabaseStorage(baseURL, serviceKey, bucket string) *SupabaseStorage {
	baseURL = strings.TrimRight(baseURL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20*time.Second).
		SetAuthToken(serviceKey)

	return &SupabaseStorage{
		baseURL: baseURL,
		key:     serviceKey,
		bucket:  bucket,
		http:    client,
		cb:      newBreaker("Supabase-Storage"),
	}
}

// NewSupabaseStorageFromEnv: SUPABASE_PROJECT_URL, SUPABASE_SERVICE_ROLE_KEY, SUPABASE_BUCKET
func NewSupabaseStorageFromEnv() *SupabaseStorage {
	return NewSupabaseStorage(
		configs.GetEnv("SUPABASE_PROJECT_URL"),
		configs.GetEnv("SUPABASE_SERVICE_ROLE_KEY"),
		configs.GetEnv("SUPABASE_BUCKET", "warga-docs"),
	)
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[WARN] circuit breaker %s: %s -> %s", name, from, to)
		},
	})
}

func (s *SupabaseStorage) objectPath(path string) string {
	return fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, path)
}

// PublicURL: path sudah disanitasi GenerateUniqueFilename, tidak di-escape lagi
func (s *SupabaseStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

func (s *SupabaseStorage) Configured() bool {
	return s.baseURL != "" && s.key != ""
}

func (s *SupabaseStorage) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	_, err := s.cb.Execute(func() (interface{}, error) {
		resp, err := s.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", contentType).
			SetHeader("x-upsert", "true").
			SetBody(data).
			Put(s.objectPath(path))
		if err != nil {
			return nil, fmt.Errorf("gagal mengirim request upload: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("upload gagal status %d: %s", resp.StatusCode(), resp.String())
		}
		return nil, nil
	})
	if err != nil {
		return "", err
	}
	log.Printf("[INFO] upload sukses: %s/%s (%d bytes)", s.bucket, path, len(data))
	return s.PublicURL(path), nil
}

func (s *SupabaseStorage) Delete(ctx context.Context, publicURL string) error {
	bucket, path, err := ExtractPublicPath(publicURL)
	if err != nil {
		return err
	}
	_, err = s.cb.Execute(func() (interface{}, error) {
		resp, err := s.http.R().
			SetContext(ctx).
			Delete(fmt.Sprintf("/storage/v1/object/%s/%s", bucket, path))
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("delete gagal status %d: %s", resp.StatusCode(), resp.String())
		}
		return nil, nil
	})
	return err
}

// ExtractPublicPath memecah URL publik Supabase menjadi bucket dan path objek.
func ExtractPublicPath(fullURL string) (bucket string, path string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("url tidak valid untuk Supabase public object")
	}
	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 || pathParts[1] == "" {
		return "", "", fmt.Errorf("gagal ekstrak bucket dan path")
	}
	return pathParts[0], pathParts[1], nil
}
