package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/TemirB/cocktail-shop/internal/config"
)

type permanent struct{ err error }

func (p *permanent) Error() string { return p.err.Error() }
func (p *permanent) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying. Do returns the wrapped error as is.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanent{err: err}
}

func Do(ctx context.Context, retryPolicy config.Retry, fn func() error) error {
	d := retryPolicy.Base
	var err error

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < retryPolicy.Attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		var p *permanent
		if errors.As(err, &p) {
			return p.err
		}
		if i == retryPolicy.Attempts-1 {
			break
		}

		delay := d
		if retryPolicy.JitterFactor > 0 {
			jitter := 1 + retryPolicy.JitterFactor*(2*r.Float64()-1)
			delay = time.Duration(float64(delay) * jitter)
		}

		if retryPolicy.Max > 0 && delay > retryPolicy.Max {
			delay = retryPolicy.Max
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}

		d *= 2
		if retryPolicy.Max > 0 && d > retryPolicy.Max {
			d = retryPolicy.Max
		}
	}
	return err
}
