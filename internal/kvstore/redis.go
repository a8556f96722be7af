package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Redis stores every key under a namespace so several apps can share one database.
type Redis struct {
	client    *redis.Client
	namespace string
}

func NewRedis(client *redis.Client, namespace string) *Redis {
	if namespace != "" && !strings.HasSuffix(namespace, ":") {
		namespace += ":"
	}
	return &Redis{client: client, namespace: namespace}
}

// DialRedis connects and pings the server.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("kvstore: redis ping %s: %w", addr, err)
	}
	return client, nil
}

func (r *Redis) key(k string) string { return r.namespace + k }

func (r *Redis) GetString(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) PutString(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("kvstore: redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) GetLong(ctx context.Context, key string) (int64, bool, error) {
	return getLong(ctx, r, key)
}

func (r *Redis) PutLong(ctx context.Context, key string, value int64) error {
	return r.PutString(ctx, key, formatLong(value))
}

func (r *Redis) GetBool(ctx context.Context, key string) (bool, bool, error) {
	return getBool(ctx, r, key)
}

func (r *Redis) PutBool(ctx context.Context, key string, value bool) error {
	return r.PutString(ctx, key, formatBool(value))
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("kvstore: redis del %s: %w", key, err)
	}
	return nil
}

func (r *Redis) HasKey(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("kvstore: redis exists %s: %w", key, err)
	}
	return n > 0, nil
}

func (r *Redis) Keys(ctx context.Context, prefix string) ([]string, error) {
	pattern := escapeGlob(r.namespace+prefix) + "*"

	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("kvstore: redis scan %s: %w", prefix, err)
		}
		for _, k := range batch {
			keys = append(keys, strings.TrimPrefix(k, r.namespace))
		}
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
