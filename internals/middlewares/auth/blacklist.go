package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist menyimpan token yang sudah logout sampai exp-nya lewat.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, until time.Time) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type RedisBlacklist struct {
	client *redis.Client
	prefix string
}

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client, prefix: "wargakemang:bl:"}
}

func (b *RedisBlacklist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return b.prefix + hex.EncodeToString(sum[:])
}

func (b *RedisBlacklist) Add(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, b.key(token), 1, ttl).Err()
}

func (b *RedisBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NoopBlacklist dipakai kalau REDIS_ADDR kosong: logout hanya di sisi client.
type NoopBlacklist struct{}

func (NoopBlacklist) Add(context.Context, string, time.Time) error { return nil }

func (NoopBlacklist) IsBlacklisted(context.Context, string) (bool, error) { return false, nil }
