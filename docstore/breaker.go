// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/danielhkuo/lineup/metrics"
)

// BreakerConfig controls when the breaker opens and how long it stays open.
type BreakerConfig struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	HalfOpenRequests    uint32
}

var DefaultBreakerConfig = BreakerConfig{
	ConsecutiveFailures: 5,
	OpenTimeout:         30 * time.Second,
	HalfOpenRequests:    3,
}

// BreakerStore fails fast with ErrUnavailable while the wrapped store keeps
// failing. Only ErrUnavailable errors count against the breaker; not-found
// and caller errors, including canceled contexts, pass through as successes.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// WithBreaker wraps next with a circuit breaker.
func WithBreaker(next Store, name string, cfg BreakerConfig) *BreakerStore {
	metrics.BreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return !errors.Is(err, ErrUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("store breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.BreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &BreakerStore{next: next, cb: cb, name: name}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func execute[T any](b *BreakerStore, fn func() (T, error)) (T, error) {
	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})

	var zero T
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, fmt.Errorf("%s: %w: %w", b.name, ErrUnavailable, err)
	}
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected result type %T", b.name, result)
	}
	return typed, nil
}

// State returns the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerStore) Get(ctx context.Context, ref DocRef) (*Snapshot, error) {
	return execute(b, func() (*Snapshot, error) {
		return b.next.Get(ctx, ref)
	})
}

func (b *BreakerStore) Set(ctx context.Context, ref DocRef, v any) error {
	_, err := execute(b, func() (struct{}, error) {
		return struct{}{}, b.next.Set(ctx, ref, v)
	})
	return err
}

func (b *BreakerStore) Add(ctx context.Context, coll CollectionRef, v any) (DocRef, error) {
	return execute(b, func() (DocRef, error) {
		return b.next.Add(ctx, coll, v)
	})
}

func (b *BreakerStore) Update(ctx context.Context, ref DocRef, fn UpdateFunc) error {
	_, err := execute(b, func() (struct{}, error) {
		return struct{}{}, b.next.Update(ctx, ref, fn)
	})
	return err
}

func (b *BreakerStore) FindEqual(ctx context.Context, coll CollectionRef, field, value string) ([]*Snapshot, error) {
	return execute(b, func() ([]*Snapshot, error) {
		return b.next.FindEqual(ctx, coll, field, value)
	})
}

func (b *BreakerStore) FindRange(ctx context.Context, coll CollectionRef, field, lower, upper string) ([]*Snapshot, error) {
	return execute(b, func() ([]*Snapshot, error) {
		return b.next.FindRange(ctx, coll, field, lower, upper)
	})
}

func (b *BreakerStore) Close() error {
	return b.next.Close()
}
