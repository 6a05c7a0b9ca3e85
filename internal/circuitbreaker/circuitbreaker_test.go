//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

// fakeClock lets tests move past the open timeout without sleeping.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func newTestBreaker(cfg Config) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	cb := New(cfg)
	cb.now = clock.Now
	return cb, clock
}

func fail() error    { return errBackend }
func succeed() error { return nil }

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())

	assert.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(Config{FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Second, Name: "test"})

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), errBackend)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), errBackend)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb, clock := newTestBreaker(Config{FailureThreshold: 2, SuccessThreshold: 2, Timeout: time.Second, Name: "test"})

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	require.Equal(t, StateOpen, cb.State())

	clock.Advance(time.Second)

	require.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock := newTestBreaker(Config{FailureThreshold: 2, SuccessThreshold: 2, Timeout: time.Second, Name: "test"})

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	clock.Advance(2 * time.Second)

	assert.Error(t, cb.Execute(context.Background(), fail))
	assert.Equal(t, StateOpen, cb.State())

	assert.ErrorIs(t, cb.Execute(context.Background(), succeed), ErrCircuitOpen)
}

func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	errNotFound := errors.New("not found")
	cb, _ := newTestBreaker(Config{
		FailureThreshold: 1,
		Name:             "test",
		IsSuccessful:     func(err error) bool { return errors.Is(err, errNotFound) },
	})

	err := cb.Execute(context.Background(), func() error { return errNotFound })

	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, StateClosed, cb.State())
	assert.Zero(t, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_Cancellation(t *testing.T) {
	cb, _ := newTestBreaker(Config{FailureThreshold: 1, Name: "test"})

	t.Run("cancelled context is not executed", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("cancellation during call does not count", func(t *testing.T) {
		err := cb.Execute(context.Background(), func() error { return context.Canceled })

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	cb, clock := newTestBreaker(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "menu_items",
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		},
	})

	_ = cb.Execute(context.Background(), fail)
	clock.Advance(time.Second)
	_ = cb.Execute(context.Background(), succeed)

	assert.Equal(t, []string{
		"menu_items:closed->open",
		"menu_items:open->half-open",
		"menu_items:half-open->closed",
	}, transitions)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(Config{Name: "stats"})

	stats := cb.GetStats()
	assert.Equal(t, "stats", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = cb.Execute(context.Background(), fail)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestNew_FillsDefaults(t *testing.T) {
	cb := New(Config{})

	assert.Equal(t, DefaultConfig().FailureThreshold, cb.config.FailureThreshold)
	assert.Equal(t, DefaultConfig().SuccessThreshold, cb.config.SuccessThreshold)
	assert.Equal(t, DefaultConfig().Timeout, cb.config.Timeout)
	assert.Equal(t, "circuit-breaker", cb.Name())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, 2, int(StateOpen))
}
