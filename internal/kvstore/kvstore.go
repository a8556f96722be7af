// Package kvstore is the persisted settings storage the local core is built on.
// Every value is kept as text; longs and bools are encoded on top of strings so
// all backends behave the same.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

//go:generate mockgen -destination=internal/kvstore/kvstoretest/kvstore_mock.go -package=kvstoretest github.com/TemirB/cocktail-shop/internal/kvstore Store

var ErrTypeMismatch = errors.New("kvstore: stored value has a different type")

type Store interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	PutString(ctx context.Context, key, value string) error
	GetLong(ctx context.Context, key string) (int64, bool, error)
	PutLong(ctx context.Context, key string, value int64) error
	GetBool(ctx context.Context, key string) (bool, bool, error)
	PutBool(ctx context.Context, key string, value bool) error
	Remove(ctx context.Context, key string) error
	HasKey(ctx context.Context, key string) (bool, error)
	// Keys returns every key starting with prefix; "" lists all keys.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type stringGetter interface {
	GetString(ctx context.Context, key string) (string, bool, error)
}

func getLong(ctx context.Context, s stringGetter, key string) (int64, bool, error) {
	v, ok, err := s.GetString(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s is not a long: %v", ErrTypeMismatch, key, err)
	}
	return n, true, nil
}

func getBool(ctx context.Context, s stringGetter, key string) (bool, bool, error) {
	v, ok, err := s.GetString(ctx, key)
	if err != nil || !ok {
		return false, false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false, fmt.Errorf("%w: %s is not a bool: %v", ErrTypeMismatch, key, err)
	}
	return b, true, nil
}

func formatLong(v int64) string { return strconv.FormatInt(v, 10) }

func formatBool(v bool) string { return strconv.FormatBool(v) }
