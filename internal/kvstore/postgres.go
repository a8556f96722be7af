package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
)

// Postgres keeps the settings in a single two-column table.
type Postgres struct {
	pool  *pgxpool.Pool
	table string
}

func NewPostgres(pool *pgxpool.Pool, table string) *Postgres {
	if table == "" {
		table = "kv_settings"
	}
	return &Postgres{pool: pool, table: table}
}

// Connect builds a pool with SQL tracing routed to logger and pings it.
func Connect(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore: parse dsn: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newZapTracer(logger),
		LogLevel: tracelog.LogLevelWarn,
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("kvstore: ping: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the table when it is missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`, p.qt()))
	return err
}

func (p *Postgres) qt() string { return pgx.Identifier{p.table}.Sanitize() }

func (p *Postgres) GetString(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := p.pool.QueryRow(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE key=$1`, p.qt()), key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: pg get %s: %w", key, err)
	}
	return v, true, nil
}

func (p *Postgres) PutString(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value
	`, p.qt()), key, value)
	if err != nil {
		return fmt.Errorf("kvstore: pg put %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) GetLong(ctx context.Context, key string) (int64, bool, error) {
	return getLong(ctx, p, key)
}

func (p *Postgres) PutLong(ctx context.Context, key string, value int64) error {
	return p.PutString(ctx, key, formatLong(value))
}

func (p *Postgres) GetBool(ctx context.Context, key string) (bool, bool, error) {
	return getBool(ctx, p, key)
}

func (p *Postgres) PutBool(ctx context.Context, key string, value bool) error {
	return p.PutString(ctx, key, formatBool(value))
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key=$1`, p.qt()), key); err != nil {
		return fmt.Errorf("kvstore: pg delete %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) HasKey(ctx context.Context, key string) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE key=$1)`, p.qt()), key).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("kvstore: pg exists %s: %w", key, err)
	}
	return ok, nil
}

func (p *Postgres) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := p.pool.Query(ctx, fmt.Sprintf(`
		SELECT key FROM %s WHERE starts_with(key, $1) ORDER BY key
	`, p.qt()), prefix)
	if err != nil {
		return nil, fmt.Errorf("kvstore: pg keys %s: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
