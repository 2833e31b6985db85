// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package tableau

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/metrics"
	models "github.com/tomtom215/marinestats/internal/models/tableau"
)

// breakerName labels circuit breaker metrics and logs.
const breakerName = "tableau-api"

// CircuitBreakerClient wraps an API with a circuit breaker so a Tableau
// outage fails requests fast instead of holding dashboard requests open
// for the full client timeout.
//
// Rejections by Tableau (4xx replies, a -1 trusted ticket) are answers, not
// outages, and do not count towards opening the circuit.
type CircuitBreakerClient struct {
	api API
	cb  *gobreaker.CircuitBreaker[any]
}

// BreakerSettings tunes the circuit breaker.
type BreakerSettings struct {
	// MinRequests is the number of requests in a window before the
	// failure ratio is considered.
	MinRequests uint32

	// FailureRatio opens the circuit once reached.
	FailureRatio float64

	// Interval resets the counts while closed.
	Interval time.Duration

	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
}

// DefaultBreakerSettings opens after 60% failures over at least 5 calls
// and probes again after a minute.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MinRequests:  5,
		FailureRatio: 0.6,
		Interval:     time.Minute,
		Timeout:      time.Minute,
	}
}

// NewCircuitBreakerClient wraps api.
func NewCircuitBreakerClient(api API, settings BreakerSettings) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: isBreakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{api: api, cb: cb}
}

// isBreakerSuccess treats Tableau rejections and caller cancellations as
// successful calls.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.IsClientError() {
		return true
	}
	return errors.Is(err, ErrTrustedTicketRejected) ||
		errors.Is(err, ErrNoToken) ||
		errors.Is(err, context.Canceled)
}

// State returns the current breaker state as a string.
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// execute runs fn through the breaker and records the outcome.
func (cbc *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := cbc.cb.Execute(fn)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	case err != nil && !isBreakerSuccess(err):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(float64(cbc.cb.Counts().ConsecutiveFailures))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)
	}

	return result, err
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
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

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// SignIn signs in with circuit breaker protection.
func (cbc *CircuitBreakerClient) SignIn(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	return castResult[*models.Session](cbc.execute(func() (any, error) {
		return cbc.api.SignIn(ctx, creds)
	}))
}

// TrustedTicket requests a trusted ticket with circuit breaker protection.
func (cbc *CircuitBreakerClient) TrustedTicket(ctx context.Context, username string) (string, error) {
	return castResult[string](cbc.execute(func() (any, error) {
		return cbc.api.TrustedTicket(ctx, username)
	}))
}

// SignOut signs out with circuit breaker protection.
func (cbc *CircuitBreakerClient) SignOut(ctx context.Context, token string) error {
	_, err := cbc.execute(func() (any, error) {
		return nil, cbc.api.SignOut(ctx, token)
	})
	return err
}

// ListWorkbooks lists workbooks with circuit breaker protection.
func (cbc *CircuitBreakerClient) ListWorkbooks(ctx context.Context, session *models.Session) ([]models.Workbook, error) {
	return castResult[[]models.Workbook](cbc.execute(func() (any, error) {
		return cbc.api.ListWorkbooks(ctx, session)
	}))
}

// ServerInfo probes the server with circuit breaker protection.
func (cbc *CircuitBreakerClient) ServerInfo(ctx context.Context) (*models.ServerInfo, error) {
	return castResult[*models.ServerInfo](cbc.execute(func() (any, error) {
		return cbc.api.ServerInfo(ctx)
	}))
}
