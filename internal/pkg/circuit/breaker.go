package circuit

import (
	"errors"
	"sync"
	"time"

	"github.com/TemirB/cocktail-shop/internal/config"
)

var ErrOpen = errors.New("circuit open")

type State int

const (
	Closed   State = iota // normal behavior
	Open                  // reject calls until the open timeout passes
	HalfOpen              // let a few trial calls through
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// Breaker guards calls to the remote cocktail catalog.
// After threshold consecutive failures in Closed it opens.
// In Open it rejects everything for openTimeout, then lets up to
// maxHalfOpen trial calls through.
type Breaker struct {
	mu                 sync.Mutex
	state              State
	errs, threshold    uint32
	openTimeout        time.Duration
	lastChange         time.Time
	trial, maxHalfOpen uint32
	now                func() time.Time

	totalSuccess uint64
	totalFailure uint64
	rejected     uint64
}

// Stats is a point-in-time view of the breaker, served by /debug/breaker.
type Stats struct {
	State        string    `json:"state"`
	TotalSuccess uint64    `json:"total_success"`
	TotalFailure uint64    `json:"total_failure"`
	Rejected     uint64    `json:"rejected"`
	Since        time.Time `json:"since"`
}

func New(cfg config.Breaker) *Breaker {
	return newWithClock(cfg, time.Now)
}

func newWithClock(cfg config.Breaker, now func() time.Time) *Breaker {
	if cfg.Threshold == 0 {
		cfg.Threshold = 1
	}
	if cfg.MaxHalfOpen == 0 {
		cfg.MaxHalfOpen = 1
	}
	return &Breaker{
		state:       Closed,
		threshold:   cfg.Threshold,
		openTimeout: cfg.OpenTimeout,
		lastChange:  now(),
		maxHalfOpen: cfg.MaxHalfOpen,
		now:         now,
	}
}

// Allow reports whether a call may proceed.
// Open moves to HalfOpen once the timeout has passed.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	switch b.state {
	case Open:
		if now.Sub(b.lastChange) >= b.openTimeout {
			b.transitionTo(now, HalfOpen)
			b.trial++
			return nil
		}
		b.rejected++
		return ErrOpen
	case HalfOpen:
		if b.trial >= b.maxHalfOpen {
			b.rejected++
			return ErrOpen
		}
		b.trial++
		return nil
	default:
		return nil
	}
}

func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.totalSuccess++
	switch b.state {
	case HalfOpen:
		b.transitionTo(b.now(), Closed)
	case Closed:
		b.errs = 0
	}
}

func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.totalFailure++

	switch b.state {
	case HalfOpen:
		b.transitionTo(now, Open)
	case Closed:
		b.errs++
		if b.errs >= b.threshold {
			b.transitionTo(now, Open)
		}
	}
}

// Do runs fn if the breaker allows it and records the outcome.
// Errors for which ok returns true count as success (e.g. "not found").
func (b *Breaker) Do(fn func() error, ok func(error) bool) error {
	if err := b.Allow(); err != nil {
		return err
	}
	err := fn()
	if err == nil || (ok != nil && ok(err)) {
		b.Success()
	} else {
		b.Failure()
	}
	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		State:        b.state.String(),
		TotalSuccess: b.totalSuccess,
		TotalFailure: b.totalFailure,
		Rejected:     b.rejected,
		Since:        b.lastChange,
	}
}

func (b *Breaker) transitionTo(now time.Time, next State) {
	b.state = next
	b.lastChange = now
	b.trial = 0
	if next == Closed {
		b.errs = 0
	}
}
