package resilience

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anthanhphan/gosdk/logger"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitOpenError is returned while the circuit rejects calls.
type CircuitOpenError struct {
	Name       string
	RetryAfter time.Duration
}

func (e *CircuitOpenError) Error() string {
	return fmt.Sprintf("%v for %s: retry in %s", ErrCircuitOpen, e.Name, e.RetryAfter.Round(time.Millisecond))
}

func (e *CircuitOpenError) Is(target error) bool {
	return target == ErrCircuitOpen
}

type CircuitBreakerState string

const (
	CircuitClosed   CircuitBreakerState = "closed"
	CircuitOpen     CircuitBreakerState = "open"
	CircuitHalfOpen CircuitBreakerState = "half_open"
)

// CircuitBreakerConfig tunes a CircuitBreaker. Zero values take defaults.
type CircuitBreakerConfig struct {
	Name             string
	FailureThreshold int
	OpenTimeout      time.Duration

	// IsFailure picks the errors that count against the circuit.
	// Nil counts everything except context.Canceled.
	IsFailure func(error) bool

	// Now replaces time.Now, for tests.
	Now func() time.Time
}

// CircuitBreaker fails calls fast after FailureThreshold consecutive failures.
// After OpenTimeout a single probe is let through; its result closes or re-opens the circuit.
type CircuitBreaker struct {
	mu sync.Mutex

	cfg CircuitBreakerConfig

	state     CircuitBreakerState
	failures  int
	openUntil time.Time
	probing   bool
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 10 * time.Second
	}
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return !errors.Is(err, context.Canceled) }
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &CircuitBreaker{cfg: cfg, state: CircuitClosed}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.currentLocked(cb.cfg.Now())
}

// Execute runs fn unless the circuit rejects the call.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	probe, err := cb.admit()
	if err != nil {
		return err
	}

	err = fn(ctx)
	cb.record(probe, err)
	return err
}

// admit reports whether the call is the half-open probe, or returns CircuitOpenError.
func (cb *CircuitBreaker) admit() (bool, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.cfg.Now()
	switch cb.currentLocked(now) {
	case CircuitOpen:
		return false, cb.openErrLocked(now)
	case CircuitHalfOpen:
		if cb.probing {
			return false, cb.openErrLocked(now)
		}
		cb.probing = true
		return true, nil
	default:
		return false, nil
	}
}

func (cb *CircuitBreaker) record(probe bool, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if probe {
		cb.probing = false
	}

	failed := err != nil && cb.cfg.IsFailure(err)
	switch {
	case err != nil && !failed:
		// Neutral outcome: a cancelled probe leaves the circuit half-open.
	case failed && (probe || cb.failures+1 >= cb.cfg.FailureThreshold):
		cb.openLocked()
	case failed:
		cb.failures++
	case probe:
		cb.closeLocked()
	default:
		cb.failures = 0
	}
}

// currentLocked moves an expired open circuit to half-open.
func (cb *CircuitBreaker) currentLocked(now time.Time) CircuitBreakerState {
	if cb.state == CircuitOpen && !now.Before(cb.openUntil) {
		cb.state = CircuitHalfOpen
		cb.probing = false
	}
	return cb.state
}

func (cb *CircuitBreaker) openLocked() {
	if cb.state != CircuitOpen {
		logger.Warnw("Circuit breaker opened", "name", cb.cfg.Name, "open_timeout", cb.cfg.OpenTimeout.String())
	}
	cb.state = CircuitOpen
	cb.failures = 0
	cb.openUntil = cb.cfg.Now().Add(cb.cfg.OpenTimeout)
}

func (cb *CircuitBreaker) closeLocked() {
	logger.Infow("Circuit breaker closed", "name", cb.cfg.Name)
	cb.state = CircuitClosed
	cb.failures = 0
}

func (cb *CircuitBreaker) openErrLocked(now time.Time) error {
	return &CircuitOpenError{
		Name:       cb.cfg.Name,
		RetryAfter: max(cb.openUntil.Sub(now), 0),
	}
}
