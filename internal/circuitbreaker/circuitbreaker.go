// Package circuitbreaker guards calls to MongoDB so a degraded catalog fails fast.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker. The numeric values are
// exported as the circuit_breaker_state gauge.
type State int

const (
	// StateClosed lets calls through.
	StateClosed State = iota
	// StateHalfOpen lets probe calls through after the open timeout elapsed.
	StateHalfOpen
	// StateOpen rejects calls with ErrCircuitOpen.
	StateOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before opening the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes needed to close it.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	Name    string
	// IsSuccessful classifies fn errors; errors it accepts do not count as failures.
	// Context cancellation never counts.
	IsSuccessful func(error) bool
	// OnStateChange is called after every transition, outside the lock.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	now             func() time.Time
	mu              sync.RWMutex
}

// New creates a circuit breaker. Non-positive thresholds fall back to defaults.
func New(config Config) *CircuitBreaker {
	def := DefaultConfig()
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = def.FailureThreshold
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = def.SuccessThreshold
	}
	if config.Timeout <= 0 {
		config.Timeout = def.Timeout
	}
	if config.Name == "" {
		config.Name = def.Name
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Execute runs fn unless the circuit is open. A cancelled ctx short-circuits
// without touching the breaker's counters.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := cb.allow(); err != nil {
		return err
	}

	err := fn()

	switch {
	case err == nil, cb.isSuccessful(err):
		cb.record(true)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil:
		// caller gave up; says nothing about the backend
	default:
		cb.record(false)
	}
	return err
}

func (cb *CircuitBreaker) isSuccessful(err error) bool {
	return cb.config.IsSuccessful != nil && cb.config.IsSuccessful(err)
}

func (cb *CircuitBreaker) allow() error {
	cb.mu.Lock()
	if cb.state != StateOpen {
		cb.mu.Unlock()
		return nil
	}
	if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
		cb.mu.Unlock()
		return ErrCircuitOpen
	}
	cb.successCount = 0
	from := cb.transition(StateHalfOpen)
	cb.mu.Unlock()

	cb.notify(from, StateHalfOpen)
	return nil
}

func (cb *CircuitBreaker) record(success bool) {
	cb.mu.Lock()
	from := cb.state
	if success {
		cb.onSuccess()
	} else {
		cb.onFailure()
	}
	to := cb.state
	cb.mu.Unlock()

	if from != to {
		cb.notify(from, to)
	}
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.transition(StateOpen)
		}
	case StateHalfOpen:
		cb.failureCount = cb.config.FailureThreshold
		cb.transition(StateOpen)
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	if cb.state != StateHalfOpen {
		cb.successCount = 0
		return
	}
	cb.successCount++
	if cb.successCount >= cb.config.SuccessThreshold {
		cb.successCount = 0
		cb.transition(StateClosed)
	}
}

// transition must be called with mu held.
func (cb *CircuitBreaker) transition(to State) State {
	from := cb.state
	cb.state = to

	evt := log.Info()
	if to == StateOpen {
		evt = log.Warn().Int("failure_count", cb.failureCount)
	}
	evt.Str("circuit_breaker", cb.config.Name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("circuit breaker state changed")
	return from
}

func (cb *CircuitBreaker) notify(from, to State) {
	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a snapshot of the breaker for health reporting.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"is_healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
