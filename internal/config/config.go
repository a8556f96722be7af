package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cache struct {
	TTL       time.Duration
	RecentMax int
	HotSize   int
}

type KV struct {
	Backend   string
	Path      string
	Namespace string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
	Table    string
}

type API struct {
	BaseURL string
	Timeout time.Duration
}

type Kafka struct {
	Brokers []string
	Topic   string
	Group   string
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPAddr string
	Debug    bool

	Cache   Cache
	KV      KV
	Redis   Redis
	Pg      Postgres
	API     API
	Kafka   Kafka
	Breaker Breaker
	Retry   Retry
}

// Load keeps the original API and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

// FromEnv is Load without the fatal exit.
func FromEnv() (Config, error) { return load() }

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr: envDefault("HTTP_ADDR", "127.0.0.1:8081"),
		Debug:    envBool("DEBUG", false),

		Cache: Cache{
			TTL:       envDurationMS("CACHE_TTL", 24*time.Hour),
			RecentMax: envInt("RECENT_MAX", 20),
			HotSize:   envInt("CACHE_HOT_SIZE", 256),
		},

		KV: KV{
			Backend:   strings.ToLower(envDefault("KV_BACKEND", BackendFile)),
			Path:      envDefault("KV_PATH", defaultKVPath()),
			Namespace: envDefault("KV_NAMESPACE", "cocktails"),
		},

		Redis: Redis{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
			DB:       envInt("REDIS_DB", 0),
		},

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     strings.TrimSpace(envDefault("PG_PORT", "5432")),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  strings.TrimSpace(envDefault("PG_SSLMODE", "disable")),
			Table:    strings.TrimSpace(envDefault("PG_TABLE", "kv_settings")),
		},

		API: API{
			BaseURL: envDefault("COCKTAIL_API_URL", "https://www.thecocktaildb.com/api/json/v1/1"),
			Timeout: envDurationMS("COCKTAIL_API_TIMEOUT", 10*time.Second),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   envDefault("KAFKA_TOPIC", "order-status"),
			Group:   envDefault("KAFKA_GROUP", "cocktail-shop"),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 3),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 2*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	// Validate required envs and basic sanity.
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	req := map[string]string{}
	switch c.KV.Backend {
	case BackendMemory:
	case BackendFile:
		req["KV_PATH"] = c.KV.Path
	case BackendRedis:
		req["REDIS_ADDR"] = c.Redis.Addr
	case BackendPostgres:
		req["PG_HOST"] = c.Pg.Host
		req["PG_DB"] = c.Pg.DB
		req["PG_USER"] = c.Pg.User
		req["PG_PASSWORD"] = c.Pg.Password
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", c.KV.Backend)
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &missingEnvError{Keys: missing}
	}

	if c.Cache.TTL <= 0 {
		log.Printf("CACHE_TTL is %v, adjusting to 24h", c.Cache.TTL)
		c.Cache.TTL = 24 * time.Hour
	}
	if c.Cache.RecentMax <= 0 {
		log.Printf("RECENT_MAX is %d, adjusting to 20", c.Cache.RecentMax)
		c.Cache.RecentMax = 20
	}
	if c.Cache.HotSize <= 0 {
		log.Printf("CACHE_HOT_SIZE is %d, adjusting to 1", c.Cache.HotSize)
		c.Cache.HotSize = 1
	}
	if c.Retry.Attempts < 1 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func defaultKVPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cocktails", "settings.json")
	}
	return filepath.Join(home, ".cocktails", "settings.json")
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	// If it looks like a duration with units, try ParseDuration first.
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	// Otherwise treat as milliseconds.
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
