package observability

import (
	"slices"
	"sync"
)

// Observation is one recorded lookup, request or status update.
type Observation struct {
	Kind   string `json:"kind"`
	Source string `json:"source,omitempty"`
	Method string `json:"method,omitempty"`
	Route  string `json:"route,omitempty"`
	Status int    `json:"status,omitempty"`
	OK     bool   `json:"ok,omitempty"`

	CacheMs float64 `json:"cache_ms,omitempty"`
	APIMs   float64 `json:"api_ms,omitempty"`
	DurMs   float64 `json:"dur_ms,omitempty"`
}

const (
	KindLookup       = "lookup"
	KindHTTP         = "http"
	KindStatusUpdate = "status_update"
)

// Totals is a point-in-time copy of the cache counters.
type Totals struct {
	CacheHits    int `json:"cache_hits"`
	CacheMisses  int `json:"cache_misses"`
	CacheExpired int `json:"cache_expired"`
}

// Inmem keeps the last max observations and running cache counters.
type Inmem struct {
	mu     sync.Mutex
	last   []Observation
	max    int
	totals Totals
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v Observation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveLookup(source string, cacheMs, apiMs float64) {
	m.push(Observation{Kind: KindLookup, Source: source, CacheMs: cacheMs, APIMs: apiMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(Observation{Kind: KindHTTP, Method: method, Route: route, Status: status, DurMs: durMs})
}

func (m *Inmem) ObserveStatusUpdate(processMs float64, ok bool) {
	m.push(Observation{Kind: KindStatusUpdate, DurMs: processMs, OK: ok})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.CacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.CacheMisses++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheExpired() {
	m.mu.Lock()
	m.totals.CacheExpired++
	m.mu.Unlock()
}

func (m *Inmem) Totals() Totals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals
}

// Last returns the kept observations, oldest first.
func (m *Inmem) Last() []Observation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.last)
}
