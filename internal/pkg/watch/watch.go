// Package watch holds a value that readers can follow: a subscriber receives
// the current value first and then every later one. A slow subscriber only
// sees the latest value it missed.
package watch

import (
	"context"
	"sync"
)

type Value[T any] struct {
	mu   sync.Mutex
	cur  T
	subs map[int]chan T
	next int
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{cur: initial, subs: make(map[int]chan T)}
}

func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur
}

func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cur = x
	for _, ch := range v.subs {
		offer(ch, x)
	}
}

// Subscribe returns a channel that is closed once ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	id := v.next
	v.next++
	v.subs[id] = ch
	ch <- v.cur
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, id)
		close(ch)
		v.mu.Unlock()
	}()
	return ch
}

// offer replaces a pending unread value. Only Set sends, under v.mu.
func offer[T any](ch chan T, x T) {
	select {
	case ch <- x:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- x
	}
}

// Subscribers is the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}
