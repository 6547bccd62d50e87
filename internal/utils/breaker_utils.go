package utils

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/apperror"
)

const unavailableMessage = "upstream temporarily unavailable"

// BreakerSettings configures the optional upstream circuit breaker.
type BreakerSettings struct {
	Enabled     bool
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
}

// CircuitBreakerWrapper wraps API calls with circuit breaker functionality
type CircuitBreakerWrapper struct {
	cb *gobreaker.CircuitBreaker
}

// NewCircuitBreaker creates a breaker that trips once at least three requests
// were seen in the interval and 60% of them failed. Canceled calls are not
// failures.
func NewCircuitBreaker(name string, s BreakerSettings, log *logrus.Logger) *CircuitBreakerWrapper {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	}

	return &CircuitBreakerWrapper{
		cb: gobreaker.NewCircuitBreaker(settings),
	}
}

// Execute runs fn under breaker protection. A rejected call fails with a 503
// StatusError instead of gobreaker's sentinel errors.
func (cbw *CircuitBreakerWrapper) Execute(fn func() (any, error)) (any, error) {
	result, err := cbw.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, apperror.Wrap(http.StatusServiceUnavailable, unavailableMessage, err)
	}
	return result, err
}

// State reports the breaker state, e.g. "closed" or "open".
func (cbw *CircuitBreakerWrapper) State() string {
	return cbw.cb.State().String()
}
